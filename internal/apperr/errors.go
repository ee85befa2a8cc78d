// Package apperr defines the sentinel errors shared across services,
// repositories, and handlers. Handlers translate these into HTTP statuses.
package apperr

import "errors"

var (
	// ErrNotFound means the id was well-formed but no document matched.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means a unique field (username or email) is already taken.
	ErrDuplicate = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. Login must not reveal which of the two failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidToken = errors.New("invalid or expired token")
)
