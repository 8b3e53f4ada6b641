package account

import (
	"context"
	"errors"

	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/pkg/sanitizer"
	"github.com/launchbase/backend/svc/oauth"
)

// OAuthResult is the callback outcome. Account is set only when the user is
// logged in; otherwise Redirect points the browser at the recovery screen
// (signup prefill, reactivation, or login). The callback is a browser flow,
// so every branch resolves to a redirect rather than an error body.
type OAuthResult struct {
	Account  *Account
	Redirect string
}

// OAuthCallback applies the provider-login decision table to a resolved
// profile:
//
//   - no account, or an account that never subscribed: redirect to signup
//     prefilled with the profile
//   - inactive account: redirect to reactivation
//   - account bound to password login or to a different provider: redirect
//     to login (sticky provider affinity, never silently merged)
//   - matching social account: log in; a missing provider binding on a
//     social account is backfilled on this first successful callback
func (s *Service) OAuthCallback(ctx context.Context, provider string, profile oauth.Profile) (*OAuthResult, error) {
	email := sanitizer.NormalizeEmail(profile.Email)

	acc, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return &OAuthResult{Redirect: signupPrefillRedirect(email, provider, profile.FirstName, profile.LastName)}, nil
	}
	if err != nil {
		return nil, s.internalError(ctx, "oauth: account lookup failed", err, logger.Email(email))
	}

	if !acc.HasSubscription() {
		return &OAuthResult{Redirect: signupPrefillRedirect(email, provider, profile.FirstName, profile.LastName)}, nil
	}

	if acc.Inactive {
		return &OAuthResult{Redirect: reactivateRedirect(email)}, nil
	}

	if !acc.IsSocial {
		s.log.WarnContext(ctx, "oauth login rejected for password account",
			logger.Email(email),
			logger.Component("account"),
		)
		return &OAuthResult{Redirect: redirectLogin}, nil
	}
	if acc.OAuthProvider != "" && acc.OAuthProvider != provider {
		s.log.WarnContext(ctx, "oauth login rejected for mismatched provider",
			logger.Email(email),
			logger.Event(provider),
			logger.Component("account"),
		)
		return &OAuthResult{Redirect: redirectLogin}, nil
	}

	if acc.OAuthProvider == "" {
		if err := s.store.Update(ctx, acc.ID.Hex(), map[string]any{"oauthProvider": provider}); err != nil {
			return nil, s.internalError(ctx, "oauth: failed to backfill provider", err, logger.Email(email))
		}
		acc.OAuthProvider = provider
	}

	s.log.InfoContext(ctx, "account logged in via oauth",
		logger.UserID(acc.ID.Hex()),
		logger.Email(email),
		logger.Event(provider),
		logger.Component("account"),
	)
	return &OAuthResult{Account: acc, Redirect: redirectDashboard}, nil
}
