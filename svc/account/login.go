package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/pkg/sanitizer"
	"github.com/launchbase/backend/pkg/validator"
)

// LoginParams carries the login form.
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the login outcome. Success=false with a redirect is a
// deliberate non-error signal: the email has no account, so the client
// routes to signup instead of showing a failure.
type LoginResult struct {
	Success  bool
	Redirect string
	Account  *Account // nil when Success is false
}

// Login authenticates a password account.
//
// A social account is rejected with a provider hint before the password is
// even inspected, so the hint appears whether or not a password was
// supplied. An inactive account with correct credentials is pointed at
// reactivation.
func (s *Service) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	if err := validator.Apply(
		validator.Required("email", params.Email),
		validator.ValidEmail("email", params.Email),
	); err != nil {
		return nil, core.BadRequest(err.Error())
	}

	email := sanitizer.NormalizeEmail(params.Email)

	acc, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return &LoginResult{Success: false, Redirect: redirectSignup}, nil
	}
	if err != nil {
		return nil, s.internalError(ctx, "login: account lookup failed", err, logger.Email(email))
	}

	if acc.IsSocial || acc.OAuthProvider != "" {
		return nil, core.Errorf(http.StatusBadRequest, "This account uses %s login.", acc.AuthProvider())
	}

	if err := validator.Apply(validator.Required("password", params.Password)); err != nil {
		return nil, core.BadRequest(err.Error())
	}
	if !VerifyPassword(acc.Password, params.Password, s.cfg.PasswordSalt) {
		return nil, core.Unauthorized("Invalid email or password.")
	}

	if acc.Inactive {
		return nil, core.NewError(http.StatusForbidden, "This account is inactive. Please reactivate it.").
			WithRedirect(reactivateRedirect(email))
	}

	s.log.InfoContext(ctx, "account logged in",
		logger.UserID(acc.ID.Hex()),
		logger.Email(email),
		logger.Component("account"),
	)
	return &LoginResult{Success: true, Redirect: redirectDashboard, Account: acc}, nil
}
