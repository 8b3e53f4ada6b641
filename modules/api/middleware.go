package api

import (
	"net/http"
	"net/url"

	"github.com/launchbase/backend/core"
)

// secured resolves the session cookie into an account. Requests without a
// valid session are pointed at login; inactive accounts are pointed at
// reactivation.
func (m *Module) secured(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := m.sessions.Get(ctx, r)
		if err != nil {
			m.respondError(w, r, core.Unauthorized("Please log in.").WithRedirect("/login"))
			return
		}

		acc, err := m.accounts.GetAccount(ctx, sess.UserID)
		if err != nil {
			// The session outlived the account; drop it.
			_ = m.sessions.Destroy(ctx, w, r)
			m.respondError(w, r, core.Unauthorized("Please log in.").WithRedirect("/login"))
			return
		}

		if acc.Inactive {
			m.respondError(w, r, core.Forbidden("This account is inactive. Please reactivate it.").
				WithRedirect("/reactivate?email="+url.QueryEscape(acc.Email)))
			return
		}

		next.ServeHTTP(w, r.WithContext(withAccount(ctx, acc)))
	})
}

// admin requires the resolved account to be an administrator. Must be
// mounted behind secured.
func (m *Module) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc := accountFromContext(r.Context())
		if !acc.IsAdmin {
			m.respondError(w, r, core.Forbidden("Administrator access required.").WithRedirect("/@"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
