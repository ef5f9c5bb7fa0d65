package model

type Screen string

const (
	ScreenWelcome  Screen = "WELCOME"
	ScreenSetup    Screen = "SETUP"
	ScreenPOS      Screen = "POS"
	ScreenLedger   Screen = "LEDGER"
	ScreenSettings Screen = "SETTINGS"
)

func (s Screen) String() string {
	return string(s)
}
