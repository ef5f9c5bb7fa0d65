package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/validation"
	"github.com/shopspring/decimal"
)

// SettingsDraft holds settings edits until the merchant saves them. The live
// config is never touched by a draft.
type SettingsDraft struct {
	cfg model.AppConfig
}

func NewSettingsDraft(current model.AppConfig) *SettingsDraft {
	return &SettingsDraft{cfg: current.Clone()}
}

func (d *SettingsDraft) Current() model.AppConfig {
	return d.cfg.Clone()
}

func (d *SettingsDraft) SetProfile(shopName, upiID string) {
	d.cfg.ShopName = strings.TrimSpace(shopName)
	d.cfg.UPIID = strings.TrimSpace(upiID)
}

func (d *SettingsDraft) SetQuickAmounts(input string) error {
	amounts, err := validation.ParseQuickAmounts(input)
	if err != nil {
		return err
	}
	d.cfg.QuickAmounts = amounts
	return nil
}

func (d *SettingsDraft) AddItem(name, price string) (model.CatalogItem, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(price) == "" {
		return model.CatalogItem{}, apperror.ErrMissingFields()
	}
	if err := validation.ValidateItemName(name); err != nil {
		return model.CatalogItem{}, err
	}
	if err := validation.ValidatePrice(price); err != nil {
		return model.CatalogItem{}, err
	}

	item := model.CatalogItem{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Price: decimal.RequireFromString(strings.TrimSpace(price)).InexactFloat64(),
	}
	d.cfg.Catalog = append(d.cfg.Catalog, item)
	return item, nil
}

// RemoveItem drops the item with id. Unknown ids are ignored.
func (d *SettingsDraft) RemoveItem(id string) {
	kept := make([]model.CatalogItem, 0, len(d.cfg.Catalog))
	for _, item := range d.cfg.Catalog {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	d.cfg.Catalog = kept
}

// Build validates the draft and returns the config to save.
func (d *SettingsDraft) Build() (model.AppConfig, error) {
	if err := validation.ValidateMerchant(d.cfg.ShopName, d.cfg.UPIID); err != nil {
		return model.AppConfig{}, err
	}
	if len(d.cfg.QuickAmounts) == 0 {
		return model.AppConfig{}, apperror.Validation("at least one quick amount is required")
	}
	return d.cfg.Clone(), nil
}
