package service

import (
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/store"
	"github.com/hance08/fixpay/internal/validation"
	"github.com/rs/zerolog"
)

type MerchantService struct {
	records *store.Records
	log     zerolog.Logger
}

func NewMerchantService(records *store.Records, log zerolog.Logger) *MerchantService {
	return &MerchantService{records: records, log: log}
}

// Load returns the stored config with defaults back-filled, or nil when the
// merchant has not completed setup.
func (ms *MerchantService) Load() (*model.AppConfig, error) {
	return ms.records.LoadConfig()
}

// Save replaces the stored config. Validation is the caller's job.
func (ms *MerchantService) Save(cfg model.AppConfig) error {
	if err := ms.records.SaveConfig(cfg); err != nil {
		return err
	}
	ms.log.Info().
		Str("shop", cfg.ShopName).
		Int("quick_amounts", len(cfg.QuickAmounts)).
		Int("catalog", len(cfg.Catalog)).
		Msg("merchant config saved")
	return nil
}

// CompleteSetup validates the setup form, seeds presets from the category
// and saves the resulting config.
func (ms *MerchantService) CompleteSetup(shopName, upiID, category string) (model.AppConfig, error) {
	if err := validation.ValidateMerchant(shopName, upiID); err != nil {
		return model.AppConfig{}, err
	}

	defaults := DefaultsForCategory(category)
	cfg := model.AppConfig{
		ShopName:     shopName,
		UPIID:        upiID,
		QuickAmounts: defaults.QuickAmounts,
		Catalog:      defaults.Catalog,
	}

	if err := ms.Save(cfg); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}

// Categories returns the category tags offered at setup.
func (ms *MerchantService) Categories() []string {
	return append([]string(nil), constants.Categories...)
}
