package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const facebookProfileURL = "https://graph.facebook.com/me?fields=id,email,first_name,last_name"

// FacebookAdapter implements ProviderAdapter against Facebook Login with the
// Graph API profile endpoint.
type FacebookAdapter struct {
	oauth      *oauth2.Config
	profileURL string
}

// NewFacebookAdapter builds a Facebook adapter from client credentials.
func NewFacebookAdapter(cfg Config) *FacebookAdapter {
	return &FacebookAdapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.FacebookClientID,
			ClientSecret: cfg.FacebookClientSecret,
			RedirectURL:  cfg.FacebookRedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		profileURL: facebookProfileURL,
	}
}

func (a *FacebookAdapter) ProviderID() string { return ProviderFacebook }

func (a *FacebookAdapter) AuthURL(state string) string {
	return a.oauth.AuthCodeURL(state)
}

func (a *FacebookAdapter) ResolveProfile(ctx context.Context, code string) (Profile, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, errors.Join(ErrInvalidCode, err)
	}

	resp, err := a.oauth.Client(ctx, token).Get(a.profileURL)
	if err != nil {
		return Profile{}, fmt.Errorf("oauth: facebook profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Profile{}, fmt.Errorf("oauth: facebook profile returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Profile{}, fmt.Errorf("oauth: failed to decode facebook profile: %w", err)
	}
	if payload.Email == "" {
		// Facebook omits the email when the account has none verified.
		return Profile{}, ErrNoEmail
	}

	return Profile{
		ProviderUserID: payload.ID,
		Email:          payload.Email,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
	}, nil
}

var _ ProviderAdapter = (*FacebookAdapter)(nil)
