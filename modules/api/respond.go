package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// bindJSON decodes the request body into dst, rejecting oversized or
// malformed payloads.
func bindJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return core.BadRequest("Invalid request body.")
	}
	return nil
}

// respondError serializes the failure envelope. Untagged and 5xx errors are
// logged with full detail; the client only ever sees the envelope.
func (m *Module) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var coreErr *core.Error
	if !errors.As(err, &coreErr) || coreErr.Status >= http.StatusInternalServerError {
		m.log.ErrorContext(r.Context(), "request failed",
			logger.Error(err),
			logger.Component("api"),
		)
	}
	_ = core.WriteError(w, err)
}

func (m *Module) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := core.WriteJSON(w, status, v); err != nil {
		m.log.ErrorContext(r.Context(), "failed to write response",
			logger.Error(err),
			logger.Component("api"),
		)
	}
}
