package oauth

import "errors"

var (
	// ErrInvalidCode indicates the authorization code exchange failed.
	ErrInvalidCode = errors.New("oauth: invalid authorization code")

	// ErrNoEmail indicates the provider profile carried no email address.
	ErrNoEmail = errors.New("oauth: provider returned no email")
)
