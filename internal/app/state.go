package app

import (
	"github.com/hance08/fixpay/internal/model"
	"github.com/hance08/fixpay/internal/navigator"
	"github.com/hance08/fixpay/internal/service"
)

// State is what the interactive screens share: who is logged in, the live
// merchant config and the navigator. It is built from the store at start
// and rebuilt empty after a factory reset.
type State struct {
	Nav    *navigator.Navigator
	User   *model.User
	Config *model.AppConfig

	svc *service.Service
}

func NewState(svc *service.Service) *State {
	s := &State{svc: svc, Nav: navigator.New(svc)}
	s.Refresh()
	s.Nav.Start()
	return s
}

// Refresh reloads the user and config from the store. Read failures are
// treated as absent.
func (s *State) Refresh() {
	user, err := s.svc.Auth.Current()
	if err != nil {
		user = nil
	}
	cfg, err := s.svc.Merchant.Load()
	if err != nil {
		cfg = nil
	}
	s.User = user
	s.Config = cfg
}

// Go fires a navigation event after refreshing state, so guards see what
// the screen just saved.
func (s *State) Go(event navigator.Event) (model.Screen, error) {
	s.Refresh()
	return s.Nav.Fire(event)
}

// Reset drops everything held in memory and returns to Welcome.
func (s *State) Reset() model.Screen {
	s.User = nil
	s.Config = nil
	screen, _ := s.Nav.Fire(navigator.EventFactoryReset)
	return screen
}

// Resync reloads state and resolves the screen again from what is stored.
// Screens call it when the record they need has gone missing.
func (s *State) Resync() model.Screen {
	s.Refresh()
	return s.Nav.Start()
}
