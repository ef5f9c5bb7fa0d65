package service

import "github.com/hance08/fixpay/internal/apperror"

// PendingAction is the first phase of a destructive operation. Nothing
// happens until Confirm is called; Cancel discards it. Either may be called
// once.
type PendingAction struct {
	Description string

	run      func() error
	resolved bool
}

func newPendingAction(description string, run func() error) *PendingAction {
	return &PendingAction{Description: description, run: run}
}

func (p *PendingAction) Confirm() error {
	if p.resolved {
		return apperror.ErrAlreadyResolved()
	}
	p.resolved = true
	return p.run()
}

func (p *PendingAction) Cancel() error {
	if p.resolved {
		return apperror.ErrAlreadyResolved()
	}
	p.resolved = true
	return nil
}

func (p *PendingAction) Resolved() bool {
	return p.resolved
}
