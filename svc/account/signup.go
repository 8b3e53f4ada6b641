package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/pkg/sanitizer"
	"github.com/launchbase/backend/pkg/validator"
	"github.com/launchbase/backend/svc/billing"
	"github.com/launchbase/backend/svc/oauth"
)

// SignupParams carries the signup form. Social signups arrive prefilled
// from the OAuth callback redirect and carry no password.
type SignupParams struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PaymentMethodID string `json:"paymentMethodId"`
	Social          bool   `json:"social"`
	OAuthProvider   string `json:"oauthProvider"`
}

// Validate applies the canonical signup rules: email and payment method are
// always required; a password of at least 8 characters is required unless
// the signup is social, in which case the provider must be known. Names are
// optional.
func (p SignupParams) Validate() error {
	rules := []validator.Rule{
		validator.Required("email", p.Email),
		validator.ValidEmail("email", p.Email),
		validator.Required("paymentMethodId", p.PaymentMethodID),
	}
	if p.Social {
		rules = append(rules,
			validator.OneOf("oauthProvider", p.OAuthProvider, oauth.ProviderGoogle, oauth.ProviderFacebook),
		)
	} else {
		rules = append(rules,
			validator.Required("password", p.Password),
			validator.MinLength("password", p.Password, 8),
		)
	}
	return validator.Apply(rules...)
}

// SignupResult is the successful signup outcome. The route layer starts a
// session for the account and sends the redirect to the client.
type SignupResult struct {
	Account  *Account
	Redirect string
}

// Signup creates or completes an account with a trial subscription.
//
// An existing account blocks signup when it is inactive (reactivate
// instead), already subscribed (log in instead), or bound to a different
// authentication method. An existing account without a subscription is
// completed in place, reusing its billing customer when one exists.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*SignupResult, error) {
	if err := params.Validate(); err != nil {
		return nil, core.BadRequest(err.Error())
	}

	email := sanitizer.NormalizeEmail(params.Email)

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, s.internalError(ctx, "signup: account lookup failed", err, logger.Email(email))
	}

	if existing != nil {
		if existing.Inactive {
			return nil, core.NewError(http.StatusForbidden, "This account is inactive. Please reactivate it.").
				WithRedirect(reactivateRedirect(email))
		}
		if existing.HasSubscription() {
			return nil, core.BadRequest("An account with this email already exists. Please log in.").
				WithRedirect(redirectLogin)
		}
		if err := checkProviderAffinity(existing, params); err != nil {
			return nil, err
		}
	}

	customerParams := billing.CustomerParams{
		Email:           email,
		Name:            displayName(params.FirstName, params.LastName),
		PaymentMethodID: params.PaymentMethodID,
	}

	var customerID string
	if existing != nil && existing.StripeCustomerID != "" {
		customerID = existing.StripeCustomerID
		if err := s.billing.AttachPaymentMethod(ctx, customerID, params.PaymentMethodID); err != nil {
			return nil, s.internalError(ctx, "signup: failed to attach payment method", err, logger.Email(email))
		}
		if err := s.billing.UpdateCustomer(ctx, customerID, customerParams); err != nil {
			return nil, s.internalError(ctx, "signup: failed to update billing customer", err, logger.Email(email))
		}
	} else {
		customerID, err = s.billing.CreateCustomer(ctx, customerParams)
		if err != nil {
			return nil, s.internalError(ctx, "signup: failed to create billing customer", err, logger.Email(email))
		}
	}

	sub, err := s.billing.CreateSubscription(ctx, customerID, s.cfg.TrialPeriodDays)
	if err != nil {
		return nil, s.internalError(ctx, "signup: failed to create subscription", err, logger.Email(email))
	}

	var hash string
	if !params.Social {
		hash, err = HashPassword(params.Password, s.cfg.PasswordSalt)
		if err != nil {
			return nil, s.internalError(ctx, "signup: failed to hash password", err, logger.Email(email))
		}
	}

	acc, err := s.persistSignup(ctx, existing, email, hash, customerID, sub.ID, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "account signed up",
		logger.UserID(acc.ID.Hex()),
		logger.Email(email),
		logger.SubscriptionID(sub.ID),
		logger.Component("account"),
	)
	return &SignupResult{Account: acc, Redirect: redirectDashboard}, nil
}

// checkProviderAffinity rejects a signup whose authentication method does
// not match the one the existing account is bound to.
func checkProviderAffinity(existing *Account, params SignupParams) error {
	if params.Social {
		if !existing.IsSocial && existing.Password != "" {
			return core.BadRequest("This account uses password login. Please log in.").
				WithRedirect(redirectLogin)
		}
		if existing.OAuthProvider != "" && existing.OAuthProvider != params.OAuthProvider {
			return core.Errorf(http.StatusBadRequest, "This account uses %s login.", existing.OAuthProvider)
		}
		return nil
	}
	if existing.IsSocial {
		return core.Errorf(http.StatusBadRequest, "This account uses %s login.", existing.AuthProvider())
	}
	return nil
}

// persistSignup inserts a new account or completes the existing one.
func (s *Service) persistSignup(ctx context.Context, existing *Account, email, hash, customerID, subscriptionID string, params SignupParams) (*Account, error) {
	if existing == nil {
		acc := &Account{
			Email:            email,
			Password:         hash,
			FirstName:        params.FirstName,
			LastName:         params.LastName,
			IsSocial:         params.Social,
			OAuthProvider:    params.OAuthProvider,
			StripeCustomerID: customerID,
			SubscriptionID:   subscriptionID,
		}
		if err := s.store.Insert(ctx, acc); err != nil {
			return nil, s.internalError(ctx, "signup: failed to insert account", err, logger.Email(email))
		}
		return acc, nil
	}

	fields := map[string]any{
		"firstName":        params.FirstName,
		"lastName":         params.LastName,
		"isSocial":         params.Social,
		"stripeCustomerId": customerID,
		"subscriptionId":   subscriptionID,
		"inactive":         false,
	}
	if params.Social {
		fields["oauthProvider"] = params.OAuthProvider
	} else {
		fields["password"] = hash
	}
	if err := s.store.Update(ctx, existing.ID.Hex(), fields); err != nil {
		return nil, s.internalError(ctx, "signup: failed to update account", err, logger.Email(email))
	}
	return s.store.FindByID(ctx, existing.ID.Hex())
}
