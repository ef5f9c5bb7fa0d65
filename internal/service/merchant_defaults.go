package service

import (
	"strings"

	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
)

type CategoryDefaults struct {
	QuickAmounts []float64
	Catalog      []model.CatalogItem
}

// DefaultsForCategory maps a shop category to starter presets. Unknown
// categories get the "other" bundle.
func DefaultsForCategory(category string) CategoryDefaults {
	switch category {
	case constants.CategoryTeaShop:
		return CategoryDefaults{
			QuickAmounts: []float64{10, 20, 50, 100},
			Catalog: []model.CatalogItem{
				{ID: "1", Name: "Tea", Price: 10},
				{ID: "2", Name: "Coffee", Price: 20},
				{ID: "3", Name: "Samosa", Price: 15},
			},
		}
	case constants.CategoryGrocery:
		return CategoryDefaults{
			QuickAmounts: []float64{50, 100, 200, 500},
			Catalog: []model.CatalogItem{
				{ID: "1", Name: "Milk", Price: 30},
				{ID: "2", Name: "Bread", Price: 40},
			},
		}
	case constants.CategoryRestaurant:
		return CategoryDefaults{
			QuickAmounts: []float64{100, 200, 500, 1000},
			Catalog:      []model.CatalogItem{},
		}
	case constants.CategoryPharmacy:
		return CategoryDefaults{
			QuickAmounts: []float64{50, 100, 200, 500},
			Catalog:      []model.CatalogItem{},
		}
	default:
		return CategoryDefaults{
			QuickAmounts: []float64{10, 20, 50, 100},
			Catalog:      []model.CatalogItem{},
		}
	}
}

// NormalizeCategory maps free text (e.g. an AI guess) onto the closed set.
func NormalizeCategory(category string) string {
	category = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "_")
	if _, ok := constants.CategoryLabels[category]; ok {
		return category
	}
	return constants.CategoryOther
}
