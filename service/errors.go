package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHomePrice        = errors.New("invalid home price")
	ErrInvalidDownPayment      = errors.New("invalid down payment")
	ErrDownPaymentExceedsPrice = errors.New("down payment exceeds home price")
	ErrInterestRateOutOfRange  = errors.New("interest rate out of range")
	ErrLoanTermOutOfRange      = errors.New("loan term out of range")
	ErrCalculationFailure      = errors.New("calculation failure")

	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidRequest   = errors.New("invalid request")
)

// ValidationError is returned for user-correctable input. Message is safe
// to show to the user; Err is one of the sentinel errors above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UserMessage returns the message a caller should display for err.
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return "An error occurred while calculating. Please check your inputs."
}
