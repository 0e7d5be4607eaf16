package service

import "errors"

var (
	// ErrNotFound covers unknown tokens/ids and ownership mismatches alike,
	// so a wrong owner cannot distinguish "exists" from "missing".
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is deliberately generic to avoid email enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError carries a user-facing message rendered inline on the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
