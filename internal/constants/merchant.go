package constants

const (
	DefaultCurrency = "INR"
	DefaultEmail    = "merchant@fixpay.com"
	DefaultUserID   = "1"

	MaxNameLen   = 100
	MaxAmountLen = 9
	MaxFraction  = 2

	ConfigSchemaVersion = 1
)

// Persisted store keys
const (
	KeyAuth         = "auth"
	KeyConfig       = "config"
	KeyTransactions = "transactions"
)

// Shop categories used to seed presets at setup
const (
	CategoryTeaShop    = "tea_shop"
	CategoryGrocery    = "grocery"
	CategoryRestaurant = "restaurant"
	CategoryPharmacy   = "pharmacy"
	CategoryOther      = "other"
)

var DefaultQuickAmounts = []float64{10, 20, 50, 100}

var CategoryLabels = map[string]string{
	CategoryTeaShop:    "Tea Shop",
	CategoryGrocery:    "Grocery / Kirana",
	CategoryRestaurant: "Restaurant",
	CategoryPharmacy:   "Pharmacy",
	CategoryOther:      "Other",
}

var Categories = []string{
	CategoryTeaShop,
	CategoryGrocery,
	CategoryRestaurant,
	CategoryPharmacy,
	CategoryOther,
}
