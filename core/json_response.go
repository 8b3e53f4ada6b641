package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorBody is the uniform failure envelope: a message plus an optional
// recovery redirect.
type ErrorBody struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// WriteJSON serializes v to the response with the given status code.
// Serialization failures after the header is written can only be logged by
// the caller; the body is left truncated.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError serializes a failure envelope. Tagged errors, wrapped or not,
// keep their status, message, and redirect hint; anything else is a generic
// 500 so internal detail never leaks to clients.
func WriteError(w http.ResponseWriter, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return WriteJSON(w, e.Status, ErrorBody{Error: e.Message, Redirect: e.Redirect})
	}
	return WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
