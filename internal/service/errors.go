// Package service holds the business logic behind the HTTP handlers: the
// account resolver, booking intake, catalog reader and the admin dashboard.
// Services depend on repository interfaces and never on a driver.
package service

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to handlers.  Handlers map them to HTTP status
// codes with errors.Is.
var (
	// ErrInvalidCredential covers a bad Google token, an unknown email at
	// login, an account without a password and a wrong password alike.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrPolicyViolation is returned when an email domain is not accepted.
	ErrPolicyViolation = errors.New("email domain not allowed")
	// ErrDuplicateAccount is returned when the email is already registered.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidBooking is returned when a booking fails a shape check.
	ErrInvalidBooking = errors.New("invalid booking request")
	// ErrInvalidStatus is returned for an unknown booking status filter.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrUpstream wraps failures of the store or the identity provider.
	ErrUpstream = errors.New("upstream failure")
)

func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
