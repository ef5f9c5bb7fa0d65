package errhandler

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/fixpay/internal/apperror"
	"github.com/pterm/pterm"
)

// IsCancel reports whether err means the user backed out of a prompt or
// interrupted a running request.
func IsCancel(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled) ||
		strings.Contains(err.Error(), "interrupt")
}

// Describe returns the text shown to the user for err.
func Describe(err error) string {
	return capitalize(apperror.Message(err))
}

// Inline shows err without leaving the current screen. Validation problems
// are warnings; anything else is an error.
func Inline(err error) {
	if apperror.IsKind(err, apperror.KindValidation) {
		pterm.Warning.Println(Describe(err))
		return
	}
	pterm.Error.Println(Describe(err))
}

func HandleError(err error) {
	if IsCancel(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	Inline(err)
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
