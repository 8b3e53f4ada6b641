package api

import (
	"net/http"

	"github.com/launchbase/backend/svc/account"
)

func (m *Module) handleSignup(w http.ResponseWriter, r *http.Request) {
	var params account.SignupParams
	if err := bindJSON(r, &params); err != nil {
		m.respondError(w, r, err)
		return
	}

	res, err := m.accounts.Signup(r.Context(), params)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	if _, err := m.sessions.Authenticate(r.Context(), w, r, res.Account.ID.Hex(), res.Account.Email); err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"redirect": res.Redirect,
	})
}

func (m *Module) handleReactivate(w http.ResponseWriter, r *http.Request) {
	var params struct {
		Email string `json:"email"`
	}
	if err := bindJSON(r, &params); err != nil {
		m.respondError(w, r, err)
		return
	}

	res, err := m.accounts.ReactivateByEmail(r.Context(), params.Email)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	if _, err := m.sessions.Authenticate(r.Context(), w, r, res.Account.ID.Hex(), res.Account.Email); err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":        true,
		"inactive":       false,
		"subscriptionId": res.SubscriptionID,
		"redirect":       res.Redirect,
	})
}

func (m *Module) handleCancel(w http.ResponseWriter, r *http.Request) {
	acc := accountFromContext(r.Context())

	if err := m.accounts.Cancel(r.Context(), acc); err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"inactive": true,
	})
}

func (m *Module) handleConvertToPaid(w http.ResponseWriter, r *http.Request) {
	acc := accountFromContext(r.Context())

	sub, err := m.accounts.ConvertToPaid(r.Context(), acc)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":            true,
		"subscriptionStatus": sub.Status,
	})
}

func (m *Module) handlePortalSession(w http.ResponseWriter, r *http.Request) {
	acc := accountFromContext(r.Context())

	url, err := m.accounts.PortalSessionURL(r.Context(), acc)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"url":     url,
	})
}
