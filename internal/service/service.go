package service

import (
	"time"

	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/store"
	"github.com/rs/zerolog"
)

type Clock func() time.Time

type Service struct {
	Auth     *AuthService
	Merchant *MerchantService
	Ledger   *LedgerService
	Config   *config.Config

	records *store.Records
	log     zerolog.Logger
}

func NewService(records *store.Records, cfg *config.Config, log zerolog.Logger, now Clock) (*Service, error) {
	if now == nil {
		now = time.Now
	}

	ledger := NewLedgerService(records, log, now)
	if err := ledger.Reload(); err != nil {
		return nil, err
	}

	return &Service{
		Auth:     NewAuthService(records, cfg, log),
		Merchant: NewMerchantService(records, log),
		Ledger:   ledger,
		Config:   cfg,
		records:  records,
		log:      log,
	}, nil
}

// HasAuth reports whether a login marker is stored. Storage errors count as
// absent so navigation falls back to Welcome.
func (s *Service) HasAuth() bool {
	user, err := s.Auth.Current()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read auth marker")
		return false
	}
	return user != nil
}

// HasConfig reports whether a merchant config is stored.
func (s *Service) HasConfig() bool {
	cfg, err := s.Merchant.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read merchant config")
		return false
	}
	return cfg != nil
}

// RequestFactoryReset stages removal of every stored record.
func (s *Service) RequestFactoryReset() *PendingAction {
	return newPendingAction("ARE you sure? This will delete EVERYTHING.", func() error {
		if err := s.records.Reset(); err != nil {
			return err
		}
		s.Ledger.forget()
		s.log.Info().Msg("factory reset completed")
		return nil
	})
}
