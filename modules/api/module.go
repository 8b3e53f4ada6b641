package api

import (
	"context"
	"log/slog"

	"github.com/launchbase/backend/pkg/cookie"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/pkg/session"
	"github.com/launchbase/backend/svc/account"
	"github.com/launchbase/backend/svc/oauth"
)

// Config holds route-layer configuration.
type Config struct {
	// StripePublishableKey is exposed to the client via /auth/stripe-config.
	StripePublishableKey string

	// SecureCookies marks transient cookies (OAuth state) as HTTPS-only.
	SecureCookies bool
}

// Module is the HTTP route layer: it maps requests onto the account
// orchestrator, enforces the public/secured/admin tiers, and serializes the
// uniform response envelope.
type Module struct {
	accounts  *account.Service
	sessions  *session.Manager
	cookies   *cookie.Manager
	providers []oauth.ProviderAdapter
	readiness []func(context.Context) error
	cfg       Config
	log       *slog.Logger
}

// New wires the route layer. Accounts, sessions, and cookies are required;
// providers and readiness checks are optional.
func New(
	accounts *account.Service,
	sessions *session.Manager,
	cookies *cookie.Manager,
	providers []oauth.ProviderAdapter,
	readiness []func(context.Context) error,
	cfg Config,
	log *slog.Logger,
) *Module {
	if accounts == nil {
		panic("api: account service is required")
	}
	if sessions == nil {
		panic("api: session manager is required")
	}
	if cookies == nil {
		panic("api: cookie manager is required")
	}
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Module{
		accounts:  accounts,
		sessions:  sessions,
		cookies:   cookies,
		providers: providers,
		readiness: readiness,
		cfg:       cfg,
		log:       log,
	}
}
