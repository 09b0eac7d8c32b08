// Package common defines shared constants and sentinel errors used across
// the portal's storage, repository and service layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration errors. ErrAlreadyExists deliberately does not say
	// whether the registration number or the email collided.
	ErrAlreadyExists    = errors.New("account already exists")
	ErrInvalidRegNumber = errors.New("invalid registration number format")

	// Login errors. Uniform for unknown registration number and wrong
	// password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid registration number or password")

	// Generic internal failure surfaced by services.
	ErrInternal = errors.New("internal error")
)
