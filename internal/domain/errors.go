package domain

import "errors"

var (
	// ErrCodeMismatch means the submitted OTP does not match the pending one
	// (or no registration is pending). Recoverable: re-prompt for the code.
	ErrCodeMismatch = errors.New("verification code mismatch")

	// ErrAlreadyRegistered means a user profile already exists; registration
	// short-circuits straight to the booking flow.
	ErrAlreadyRegistered = errors.New("user already registered")

	// ErrNotRegistered means a booking operation was attempted before any
	// user profile exists. Recoverable: send the caller back to registration.
	ErrNotRegistered = errors.New("no registered user")

	// ErrBadDateFormat means the booking datetime did not parse with the
	// canonical "YYYY-MM-DD HH:MM" layout. Recoverable: re-show the form.
	ErrBadDateFormat = errors.New("bad datetime format")
)
