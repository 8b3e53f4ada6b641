package oauth

import "context"

// OAuth provider identifiers. Once an account authenticates through a
// provider the identifier is sticky: later logins must use the same method.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// ProviderAdapter abstracts provider-specific OAuth behavior behind a
// minimal, provider-agnostic interface. Implementations encapsulate all
// protocol details (oauth2.Config, token exchange, profile API calls) and
// expose only the primitives the callback flow needs.
type ProviderAdapter interface {
	// ProviderID returns a stable provider identifier, e.g. "google".
	ProviderID() string

	// AuthURL builds the provider authorization URL for the given CSRF
	// state token.
	AuthURL(state string) string

	// ResolveProfile exchanges the authorization code and returns a
	// normalized profile. Exchange failures map to ErrInvalidCode; a
	// profile without an email maps to ErrNoEmail.
	ResolveProfile(ctx context.Context, code string) (Profile, error)
}

// Profile is the normalized user profile returned by a provider. The
// callback flow uses the email as the identity key and the names to prefill
// the signup form.
type Profile struct {
	ProviderUserID string
	Email          string
	FirstName      string
	LastName       string
}
