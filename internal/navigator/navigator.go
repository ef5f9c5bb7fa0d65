package navigator

import (
	"errors"
	"fmt"

	"github.com/hance08/fixpay/internal/model"
)

var ErrInvalidTransition = errors.New("invalid screen transition")

type Event string

const (
	EventLogin         Event = "login"
	EventSetupComplete Event = "setup_complete"
	EventShowLedger    Event = "show_ledger"
	EventShowSettings  Event = "show_settings"
	EventLogout        Event = "logout"
	EventBack          Event = "back"
	EventSettingsSaved Event = "settings_saved"
	EventFactoryReset  Event = "factory_reset"
)

// Gate reports which stored records exist. Navigation branches on them.
type Gate interface {
	HasAuth() bool
	HasConfig() bool
}

type transition struct {
	from  model.Screen
	event Event
}

// The target of EventLogin is resolved at runtime from the gate.
var table = map[transition]model.Screen{
	{model.ScreenWelcome, EventLogin}:          model.ScreenPOS,
	{model.ScreenSetup, EventSetupComplete}:    model.ScreenPOS,
	{model.ScreenPOS, EventShowLedger}:         model.ScreenLedger,
	{model.ScreenPOS, EventShowSettings}:       model.ScreenSettings,
	{model.ScreenPOS, EventLogout}:             model.ScreenWelcome,
	{model.ScreenLedger, EventBack}:            model.ScreenPOS,
	{model.ScreenSettings, EventBack}:          model.ScreenPOS,
	{model.ScreenSettings, EventSettingsSaved}: model.ScreenPOS,
}

// Navigator holds the single active screen. There is no history stack:
// every back target is fixed per screen.
type Navigator struct {
	gate    Gate
	current model.Screen
}

func New(gate Gate) *Navigator {
	return &Navigator{gate: gate, current: model.ScreenWelcome}
}

// Start resolves the initial screen from what is stored.
func (n *Navigator) Start() model.Screen {
	n.current = n.resolve()
	return n.current
}

func (n *Navigator) Current() model.Screen {
	return n.current
}

// Fire applies event to the current screen. An event that is not valid for
// the current screen returns ErrInvalidTransition and changes nothing.
func (n *Navigator) Fire(event Event) (model.Screen, error) {
	if event == EventFactoryReset {
		n.current = model.ScreenWelcome
		return n.current, nil
	}

	next, ok := table[transition{n.current, event}]
	if !ok {
		return n.current, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, n.current)
	}

	if event == EventLogin {
		next = n.resolve()
	}

	n.current = n.guard(next)
	return n.current, nil
}

func (n *Navigator) resolve() model.Screen {
	if !n.gate.HasAuth() {
		return model.ScreenWelcome
	}
	if !n.gate.HasConfig() {
		return model.ScreenSetup
	}
	return model.ScreenPOS
}

// POS and Settings fall back to Setup when no config is stored.
func (n *Navigator) guard(s model.Screen) model.Screen {
	if (s == model.ScreenPOS || s == model.ScreenSettings) && !n.gate.HasConfig() {
		return model.ScreenSetup
	}
	return s
}
