package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindExternal
	KindStorage
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindExternal:
		return "external"
	case KindStorage:
		return "storage"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// AppError is a classified error. Message is safe to show to the merchant;
// Err carries the internal cause.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Wrap(kind Kind, code, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Message returns the user-facing message of err, or err.Error() for plain errors.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message)
}

func ErrMissingFields() *AppError {
	return New(KindValidation, "VAL_002", "Please fill all fields")
}

func ErrInvalidUPI() *AppError {
	return New(KindValidation, "VAL_003", "Invalid UPI ID format")
}

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_004", "Amount must be greater than zero")
}

func ErrNoValidRows() *AppError {
	return New(KindValidation, "VAL_005", "No valid transactions found in file")
}

// ---- External services (EXT) ----

func ErrMissingCredential() *AppError {
	return New(KindExternal, "EXT_001", "AI API key missing")
}

func ErrExtractionFailed(err error) *AppError {
	return Wrap(KindExternal, "EXT_002", "Error processing image. Please enter manually.", err)
}

func ErrNotFoundInImage() *AppError {
	return New(KindExternal, "EXT_003", "Could not find a valid UPI ID. Please try another image or enter manually.")
}

func ErrDictationUnavailable(err error) *AppError {
	return Wrap(KindExternal, "EXT_004", "Voice input unavailable", err)
}

// ---- Storage (STO) ----

func ErrStorage(err error) *AppError {
	return Wrap(KindStorage, "STO_001", "Local storage error", err)
}

// ---- Conflict (CON) ----

func ErrAlreadyResolved() *AppError {
	return New(KindConflict, "CON_001", "Action was already confirmed or cancelled")
}
