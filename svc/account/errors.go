package account

import "errors"

var (
	// ErrNotFound indicates no account matched the lookup.
	ErrNotFound = errors.New("account: not found")

	// ErrEmailTaken indicates an insert collided with the unique email index.
	ErrEmailTaken = errors.New("account: email already registered")
)
