package core

import (
	"fmt"
	"net/http"
)

// Error is the tagged HTTP error carried from the orchestrator to the route
// layer. Redirect is a navigation hint: the frontend routes the user to a
// recovery screen (login, signup, reactivate) instead of just showing the
// message.
type Error struct {
	Status   int    // HTTP status code
	Message  string // user-facing message
	Redirect string // optional recovery path
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// WithRedirect returns a copy of the error carrying a redirect hint.
func (e *Error) WithRedirect(url string) *Error {
	cp := *e
	cp.Redirect = url
	return &cp
}

// NewError creates a tagged HTTP error.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Errorf creates a tagged HTTP error with a formatted message.
func Errorf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return NewError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return NewError(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}
