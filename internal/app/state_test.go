package app

import (
	"path/filepath"
	"testing"

	"github.com/hance08/fixpay/internal/config"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/navigator"
	"github.com/hance08/fixpay/internal/service"
	"github.com/hance08/fixpay/internal/store"
	"github.com/hance08/fixpay/migrations"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*service.Service, *store.Store) {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "fixpay.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	svc, err := service.NewService(store.NewRecords(s, zerolog.Nop()), config.NewDefault(), zerolog.Nop(), nil)
	require.NoError(t, err)
	return svc, s
}

func TestState_OnboardingFlow(t *testing.T) {
	svc, _ := newService(t)
	state := NewState(svc)
	assert.Equal(t, model.ScreenWelcome, state.Nav.Current())
	assert.Nil(t, state.User)

	_, err := svc.Auth.Login()
	require.NoError(t, err)
	screen, err := state.Go(navigator.EventLogin)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenSetup, screen)
	require.NotNil(t, state.User)

	_, err = svc.Merchant.CompleteSetup("Chai Point", "chai@upi", constants.CategoryTeaShop)
	require.NoError(t, err)
	screen, err = state.Go(navigator.EventSetupComplete)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenPOS, screen)
	require.NotNil(t, state.Config)
	assert.Equal(t, "Chai Point", state.Config.ShopName)
}

func TestState_FactoryResetFromAnyScreen(t *testing.T) {
	for _, event := range []navigator.Event{navigator.EventShowLedger, navigator.EventShowSettings} {
		t.Run(string(event), func(t *testing.T) {
			svc, s := newService(t)
			_, err := svc.Auth.Login()
			require.NoError(t, err)
			_, err = svc.Merchant.CompleteSetup("Chai Point", "chai@upi", constants.CategoryOther)
			require.NoError(t, err)

			state := NewState(svc)
			require.Equal(t, model.ScreenPOS, state.Nav.Current())
			_, err = state.Go(event)
			require.NoError(t, err)

			require.NoError(t, svc.RequestFactoryReset().Confirm())
			assert.Equal(t, model.ScreenWelcome, state.Reset())
			assert.Nil(t, state.Config)

			for _, key := range []string{constants.KeyAuth, constants.KeyConfig, constants.KeyTransactions} {
				exists, err := s.Has(key)
				require.NoError(t, err)
				assert.False(t, exists)
			}

			state = NewState(svc)
			assert.Equal(t, model.ScreenWelcome, state.Nav.Current())
		})
	}
}

func TestState_ResyncFallsBackToSetupWhenConfigMissing(t *testing.T) {
	svc, s := newService(t)
	_, err := svc.Auth.Login()
	require.NoError(t, err)
	_, err = svc.Merchant.CompleteSetup("Chai Point", "chai@upi", constants.CategoryOther)
	require.NoError(t, err)

	state := NewState(svc)
	require.Equal(t, model.ScreenPOS, state.Nav.Current())

	require.NoError(t, s.Delete(constants.KeyConfig))
	assert.Equal(t, model.ScreenSetup, state.Resync())
	assert.Nil(t, state.Config)
	assert.Equal(t, model.ScreenSetup, state.Nav.Current())
}
