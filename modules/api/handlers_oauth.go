package api

import (
	"net/http"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/cookie"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/svc/oauth"
)

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600 // seconds; one round trip to the provider
)

// handleOAuthBegin stores a CSRF state token in a short-lived signed cookie
// and sends the browser to the provider's consent screen.
func (m *Module) handleOAuthBegin(p oauth.ProviderAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := oauth.GenerateState()
		if err != nil {
			m.respondError(w, r, core.Internal("Something went wrong. Please try again."))
			return
		}

		m.cookies.SetSigned(w, stateCookieName, state,
			cookie.WithMaxAge(stateCookieMaxAge),
			cookie.WithSecure(m.cfg.SecureCookies),
		)
		http.Redirect(w, r, p.AuthURL(state), http.StatusFound)
	}
}

// handleOAuthCallback verifies the state cookie, exchanges the code for a
// profile, and applies the account decision table. This is a browser flow:
// every outcome is a 302, never a JSON error body.
func (m *Module) handleOAuthCallback(p oauth.ProviderAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state, err := m.cookies.GetSigned(r, stateCookieName)
		m.cookies.Delete(w, stateCookieName)
		if err != nil || state == "" || state != r.URL.Query().Get("state") {
			m.log.WarnContext(ctx, "oauth callback state mismatch",
				logger.Event(p.ProviderID()),
				logger.Component("api"),
			)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		profile, err := p.ResolveProfile(ctx, r.URL.Query().Get("code"))
		if err != nil {
			m.log.WarnContext(ctx, "oauth profile resolution failed",
				logger.Event(p.ProviderID()),
				logger.Error(err),
				logger.Component("api"),
			)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		res, err := m.accounts.OAuthCallback(ctx, p.ProviderID(), profile)
		if err != nil {
			m.log.ErrorContext(ctx, "oauth callback failed",
				logger.Event(p.ProviderID()),
				logger.Error(err),
				logger.Component("api"),
			)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if res.Account != nil {
			if _, err := m.sessions.Authenticate(ctx, w, r, res.Account.ID.Hex(), res.Account.Email); err != nil {
				m.log.ErrorContext(ctx, "oauth session start failed",
					logger.Error(err),
					logger.Component("api"),
				)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
		}
		http.Redirect(w, r, res.Redirect, http.StatusFound)
	}
}
