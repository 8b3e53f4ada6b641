package session

import "errors"

var (
	// ErrSessionNotFound indicates no live session matched the request.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("session: token generation failed")
)
