package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleAdapter implements ProviderAdapter against Google OAuth2 with the
// userinfo v2 profile endpoint.
type GoogleAdapter struct {
	oauth       *oauth2.Config
	userinfoURL string
}

// NewGoogleAdapter builds a Google adapter from client credentials.
func NewGoogleAdapter(cfg Config) *GoogleAdapter {
	return &GoogleAdapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userinfoURL: googleUserinfoURL,
	}
}

func (a *GoogleAdapter) ProviderID() string { return ProviderGoogle }

func (a *GoogleAdapter) AuthURL(state string) string {
	return a.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (a *GoogleAdapter) ResolveProfile(ctx context.Context, code string) (Profile, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, errors.Join(ErrInvalidCode, err)
	}

	resp, err := a.oauth.Client(ctx, token).Get(a.userinfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("oauth: google userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Profile{}, fmt.Errorf("oauth: google userinfo returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Profile{}, fmt.Errorf("oauth: failed to decode google profile: %w", err)
	}
	if payload.Email == "" {
		return Profile{}, ErrNoEmail
	}

	return Profile{
		ProviderUserID: payload.ID,
		Email:          payload.Email,
		FirstName:      payload.GivenName,
		LastName:       payload.FamilyName,
	}, nil
}

var _ ProviderAdapter = (*GoogleAdapter)(nil)
