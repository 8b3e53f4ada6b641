package oauth

// Config holds OAuth client credentials for both supported providers.
// Redirect URLs point back at the API callback routes, e.g.
// https://api.example.com/auth/google/callback.
type Config struct {
	GoogleClientID       string `env:"GOOGLE_OAUTH_CLIENT_ID"`
	GoogleClientSecret   string `env:"GOOGLE_OAUTH_CLIENT_SECRET"`
	GoogleRedirectURL    string `env:"GOOGLE_OAUTH_REDIRECT_URL"`
	FacebookClientID     string `env:"FACEBOOK_OAUTH_CLIENT_ID"`
	FacebookClientSecret string `env:"FACEBOOK_OAUTH_CLIENT_SECRET"`
	FacebookRedirectURL  string `env:"FACEBOOK_OAUTH_REDIRECT_URL"`
}
