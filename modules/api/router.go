package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/launchbase/backend/pkg/httpserver"
)

// Router builds the chi router with the three authorization tiers: public,
// secured (valid session, active account), and admin.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(m.log, m.readiness...))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", m.handleLogin)
		r.Get("/logout", m.handleLogout)
		r.Get("/stripe-config", m.handleStripeConfig)
		r.Post("/stripe-create-setup-intent", m.handleCreateSetupIntent)

		for _, p := range m.providers {
			r.Get("/"+p.ProviderID(), m.handleOAuthBegin(p))
			r.Get("/"+p.ProviderID()+"/callback", m.handleOAuthCallback(p))
		}

		r.Group(func(r chi.Router) {
			r.Use(m.secured)
			r.Get("/me", m.handleMe)
		})
	})

	r.Route("/account", func(r chi.Router) {
		r.Post("/signup", m.handleSignup)
		r.Post("/reactivate", m.handleReactivate)

		r.Group(func(r chi.Router) {
			r.Use(m.secured)
			r.Post("/cancel", m.handleCancel)
			r.Post("/convert-to-paid", m.handleConvertToPaid)
			r.Post("/create-stripe-portal-session-url", m.handlePortalSession)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(m.secured, m.admin)
		r.Get("/users", m.handleListUsers)
		r.Post("/users/update-status", m.handleUpdateUserStatus)
		r.Post("/users/update-subscription", m.handleUpdateUserSubscription)
	})

	return r
}
