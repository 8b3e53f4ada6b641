package account

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/svc/billing"
)

// Frontend routes the redirect hints point at.
const (
	redirectDashboard = "/@"
	redirectLogin     = "/login"
	redirectSignup    = "/signup"
)

// Config holds account service configuration.
type Config struct {
	// PasswordSalt is appended to passwords before bcrypt hashing. Changing
	// it invalidates every stored hash.
	PasswordSalt string `env:"PASSWORD_SALT" envDefault:"default_salt"`

	// ClientBaseURL is the absolute frontend origin, used where an external
	// service needs a full return URL (billing portal).
	ClientBaseURL string `env:"CLIENT_BASE_URL" envDefault:"http://localhost:3000"`

	// TrialPeriodDays is the free trial length for new and reactivated
	// subscriptions.
	TrialPeriodDays int64 `env:"STRIPE_TRIAL_PERIOD_DAYS" envDefault:"14"`
}

// Service orchestrates the account lifecycle: signup, login, OAuth
// callbacks, cancellation, reactivation, and the admin operations. It owns
// no HTTP concerns; failures surface as *core.Error values the route layer
// serializes.
type Service struct {
	store   Store
	billing billing.Provider
	cfg     Config
	log     *slog.Logger
}

// NewService wires the orchestrator. Panics on nil dependencies so
// misconfiguration fails at startup, not on first request.
func NewService(store Store, provider billing.Provider, cfg Config, log *slog.Logger) *Service {
	if store == nil {
		panic("account: store is required")
	}
	if provider == nil {
		panic("account: billing provider is required")
	}
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Service{store: store, billing: provider, cfg: cfg, log: log}
}

// GetAccount resolves an account by its hex id. Used by the session
// middleware to turn a session into an account.
func (s *Service) GetAccount(ctx context.Context, id string) (*Account, error) {
	return s.store.FindByID(ctx, id)
}

// reactivateRedirect builds the recovery path for an inactive account.
func reactivateRedirect(email string) string {
	return "/reactivate?email=" + url.QueryEscape(email)
}

// signupPrefillRedirect builds the signup path prefilled with the OAuth
// profile, so the form only asks for what the provider could not supply.
func signupPrefillRedirect(email, provider, firstName, lastName string) string {
	v := url.Values{}
	v.Set("email", email)
	v.Set("social", "true")
	v.Set("oauthProvider", provider)
	if firstName != "" {
		v.Set("firstName", firstName)
	}
	if lastName != "" {
		v.Set("lastName", lastName)
	}
	return redirectSignup + "?" + v.Encode()
}

// displayName joins the optional name parts for the billing customer record.
func displayName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// internalError logs the underlying failure and returns the generic tagged
// error; detail stays server-side.
func (s *Service) internalError(ctx context.Context, msg string, err error, attrs ...any) *core.Error {
	args := append([]any{logger.Error(err), logger.Component("account")}, attrs...)
	s.log.ErrorContext(ctx, msg, args...)
	return core.Internal("Something went wrong. Please try again.")
}
