package navigator

import (
	"testing"

	"github.com/hance08/fixpay/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGate struct {
	auth   bool
	config bool
}

func (g *fakeGate) HasAuth() bool   { return g.auth }
func (g *fakeGate) HasConfig() bool { return g.config }

func TestNavigator_Start(t *testing.T) {
	tests := []struct {
		name     string
		gate     fakeGate
		expected model.Screen
	}{
		{"nothing stored", fakeGate{}, model.ScreenWelcome},
		{"config without auth", fakeGate{config: true}, model.ScreenWelcome},
		{"auth without config", fakeGate{auth: true}, model.ScreenSetup},
		{"auth and config", fakeGate{auth: true, config: true}, model.ScreenPOS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := tt.gate
			assert.Equal(t, tt.expected, New(&gate).Start())
		})
	}
}

func TestNavigator_LoginBranchesOnConfig(t *testing.T) {
	gate := &fakeGate{}
	nav := New(gate)
	require.Equal(t, model.ScreenWelcome, nav.Start())

	gate.auth = true
	next, err := nav.Fire(EventLogin)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenSetup, next)

	gate.config = true
	next, err = nav.Fire(EventSetupComplete)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenPOS, next)
}

func TestNavigator_FullLoop(t *testing.T) {
	gate := &fakeGate{auth: true, config: true}
	nav := New(gate)
	nav.Start()

	steps := []struct {
		event    Event
		expected model.Screen
	}{
		{EventShowLedger, model.ScreenLedger},
		{EventBack, model.ScreenPOS},
		{EventShowSettings, model.ScreenSettings},
		{EventSettingsSaved, model.ScreenPOS},
		{EventShowSettings, model.ScreenSettings},
		{EventBack, model.ScreenPOS},
		{EventLogout, model.ScreenWelcome},
		{EventLogin, model.ScreenPOS},
	}
	for _, step := range steps {
		got, err := nav.Fire(step.event)
		require.NoError(t, err, step.event)
		assert.Equal(t, step.expected, got, step.event)
	}
}

func TestNavigator_InvalidEventKeepsScreen(t *testing.T) {
	nav := New(&fakeGate{auth: true, config: true})
	nav.Start()

	got, err := nav.Fire(EventBack)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.ScreenPOS, got)

	_, err = nav.Fire(EventSetupComplete)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.ScreenPOS, nav.Current())
}

func TestNavigator_GuardFallsBackToSetup(t *testing.T) {
	gate := &fakeGate{auth: true, config: true}
	nav := New(gate)
	nav.Start()

	gate.config = false
	got, err := nav.Fire(EventShowSettings)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenSetup, got)

	got, err = nav.Fire(EventSetupComplete)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenSetup, got, "setup must be saved before POS opens")
}

func TestNavigator_FactoryResetFromAnyScreen(t *testing.T) {
	for _, event := range []Event{EventShowLedger, EventShowSettings, ""} {
		gate := &fakeGate{auth: true, config: true}
		nav := New(gate)
		nav.Start()
		if event != "" {
			_, err := nav.Fire(event)
			require.NoError(t, err)
		}

		got, err := nav.Fire(EventFactoryReset)
		require.NoError(t, err)
		assert.Equal(t, model.ScreenWelcome, got)
	}
}
