package e

import (
	"errors"
	"fmt"
)

// Validation failure taxonomy. Handlers map these to HTTP statuses, the
// external message stays the generic one from the response body.
var (
	ErrFieldMissing      = errors.New("required field is missing")
	ErrUnauthorized      = errors.New("access denied")
	ErrInvalidTimestamp  = errors.New("invalid timestamp format")
	ErrExpired           = errors.New("request expired")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrItemValidation    = errors.New("item validation failed")
	ErrAmountMismatch    = errors.New("amount mismatch")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrInternal          = errors.New("internal error")
)

func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
