package model

type CatalogItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AppConfig is the merchant profile. It is replaced wholesale on save.
type AppConfig struct {
	ShopName     string        `json:"shopName"`
	UPIID        string        `json:"upiId"`
	QuickAmounts []float64     `json:"quickAmounts"`
	Catalog      []CatalogItem `json:"catalog"`
}

// Clone returns a deep copy so editors never alias the live config.
func (c AppConfig) Clone() AppConfig {
	out := c
	out.QuickAmounts = append([]float64(nil), c.QuickAmounts...)
	out.Catalog = append([]CatalogItem(nil), c.Catalog...)
	if out.QuickAmounts == nil {
		out.QuickAmounts = []float64{}
	}
	if out.Catalog == nil {
		out.Catalog = []CatalogItem{}
	}
	return out
}

// MerchantGuess is what the AI extractor read off a QR code photo.
// Only UPIID is guaranteed; the rest is best effort.
type MerchantGuess struct {
	UPIID    string `json:"upiId"`
	ShopName string `json:"shopName,omitempty"`
	Category string `json:"category,omitempty"`
}

// User is the stand-in login marker. Its presence only gates navigation.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
