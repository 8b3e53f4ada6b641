package api

import (
	"net/http"

	"github.com/launchbase/backend/svc/account"
	"github.com/launchbase/backend/svc/billing"
)

func (m *Module) handleLogin(w http.ResponseWriter, r *http.Request) {
	var params account.LoginParams
	if err := bindJSON(r, &params); err != nil {
		m.respondError(w, r, err)
		return
	}

	res, err := m.accounts.Login(r.Context(), params)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	// A missing account is a routing signal, not a failure: the client
	// sends the user to signup.
	if !res.Success {
		m.respondJSON(w, r, http.StatusOK, map[string]any{
			"success":  false,
			"redirect": res.Redirect,
		})
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

func (m *Module) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := m.sessions.Destroy(r.Context(), w, r); err != nil {
		m.respondError(w, r, err)
		return
	}
	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"redirect": "/login",
	})
}

// meUser is the authenticated profile payload: stored account fields plus
// live-derived subscription state.
type meUser struct {
	*account.Account
	Plan               billing.Plan   `json:"plan"`
	SubscriptionStatus billing.Status `json:"subscriptionStatus"`
	CancelAtPeriodEnd  bool           `json:"cancelAtPeriodEnd"`
	State              account.State  `json:"state"`
}

func (m *Module) handleMe(w http.ResponseWriter, r *http.Request) {
	acc := accountFromContext(r.Context())
	res := m.accounts.Me(r.Context(), acc)

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"user": meUser{
			Account:            res.Account,
			Plan:               res.Status.Plan,
			SubscriptionStatus: res.Status.SubscriptionStatus,
			CancelAtPeriodEnd:  res.Status.CancelAtPeriodEnd,
			State:              res.State,
		},
	})
}

func (m *Module) handleStripeConfig(w http.ResponseWriter, r *http.Request) {
	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"publishableKey": m.cfg.StripePublishableKey,
	})
}

func (m *Module) handleCreateSetupIntent(w http.ResponseWriter, r *http.Request) {
	secret, err := m.accounts.SetupIntentSecret(r.Context())
	if err != nil {
		m.respondError(w, r, err)
		return
	}
	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"clientSecret": secret,
	})
}
