package store

import (
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
)

// configRecord is the on-disk shape of the merchant config. Records written
// before schema version 1 may lack quickAmounts and catalog.
type configRecord struct {
	SchemaVersion int                 `json:"schemaVersion,omitempty"`
	ShopName      string              `json:"shopName"`
	UPIID         string              `json:"upiId"`
	QuickAmounts  []float64           `json:"quickAmounts,omitempty"`
	Catalog       []model.CatalogItem `json:"catalog"`
}

func newConfigRecord(cfg model.AppConfig) configRecord {
	c := cfg.Clone()
	return configRecord{
		SchemaVersion: constants.ConfigSchemaVersion,
		ShopName:      c.ShopName,
		UPIID:         c.UPIID,
		QuickAmounts:  c.QuickAmounts,
		Catalog:       c.Catalog,
	}
}

// upgrade applies the default-fill step for older schema versions and
// returns a fully populated config.
func (r configRecord) upgrade() model.AppConfig {
	cfg := model.AppConfig{
		ShopName:     r.ShopName,
		UPIID:        r.UPIID,
		QuickAmounts: r.QuickAmounts,
		Catalog:      r.Catalog,
	}

	if len(cfg.QuickAmounts) == 0 {
		cfg.QuickAmounts = append([]float64(nil), constants.DefaultQuickAmounts...)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = []model.CatalogItem{}
	}

	return cfg
}
