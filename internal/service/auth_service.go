package service

import (
	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/store"
	"github.com/rs/zerolog"
)

// AuthService is a stand-in login: no credentials are checked, the stored
// marker only gates navigation.
type AuthService struct {
	records *store.Records
	config  *config.Config
	log     zerolog.Logger
}

func NewAuthService(records *store.Records, cfg *config.Config, log zerolog.Logger) *AuthService {
	return &AuthService{records: records, config: cfg, log: log}
}

func (as *AuthService) Login() (model.User, error) {
	email := constants.DefaultEmail
	if as.config != nil && as.config.Defaults.Email != "" {
		email = as.config.Defaults.Email
	}

	user := model.User{ID: constants.DefaultUserID, Email: email}
	if err := as.records.SaveAuth(user); err != nil {
		return model.User{}, err
	}
	as.log.Info().Str("email", email).Msg("logged in")
	return user, nil
}

func (as *AuthService) Logout() error {
	if err := as.records.DeleteAuth(); err != nil {
		return err
	}
	as.log.Info().Msg("logged out")
	return nil
}

// Current returns the stored user, or nil when logged out.
func (as *AuthService) Current() (*model.User, error) {
	return as.records.LoadAuth()
}
