package account

import (
	"context"
	"errors"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/pkg/sanitizer"
	"github.com/launchbase/backend/svc/billing"
)

// MeResult is the authenticated profile view: the account plus subscription
// state derived live from the billing provider.
type MeResult struct {
	Account *Account
	Status  billing.DerivedStatus
	State   State
}

// Me resolves the derived subscription status for an authenticated account.
// A billing failure degrades the status rather than failing the request.
func (s *Service) Me(ctx context.Context, acc *Account) *MeResult {
	status := billing.DeriveStatus(ctx, s.billing, acc.SubscriptionID, s.log)
	return &MeResult{
		Account: acc,
		Status:  status,
		State:   DeriveState(acc, status),
	}
}

// ConvertToPaid ends the trial immediately. The subscription must currently
// be trialing; any pending cancellation is cleared by the conversion.
func (s *Service) ConvertToPaid(ctx context.Context, acc *Account) (*billing.Subscription, error) {
	if !acc.HasSubscription() {
		return nil, core.BadRequest("No subscription to convert.")
	}

	sub, err := s.billing.GetSubscription(ctx, acc.SubscriptionID)
	if err != nil {
		return nil, s.internalError(ctx, "convert: failed to retrieve subscription", err,
			logger.SubscriptionID(acc.SubscriptionID))
	}
	if sub.Status != billing.StatusTrialing {
		return nil, core.BadRequest("Subscription is not in trial.")
	}

	sub, err = s.billing.EndTrialNow(ctx, acc.SubscriptionID)
	if err != nil {
		return nil, s.internalError(ctx, "convert: failed to end trial", err,
			logger.SubscriptionID(acc.SubscriptionID))
	}

	s.log.InfoContext(ctx, "subscription converted to paid",
		logger.UserID(acc.ID.Hex()),
		logger.SubscriptionID(sub.ID),
		logger.Component("account"),
	)
	return sub, nil
}

// Cancel schedules the subscription to end at period close and deactivates
// the account. Repeating the call keeps the account inactive even when the
// provider rejects the second cancellation as already pending.
func (s *Service) Cancel(ctx context.Context, acc *Account) error {
	if !acc.HasSubscription() {
		return core.BadRequest("No subscription to cancel.")
	}

	if _, err := s.billing.SetCancelAtPeriodEnd(ctx, acc.SubscriptionID, true); err != nil {
		if !acc.Inactive {
			return s.internalError(ctx, "cancel: failed to schedule cancellation", err,
				logger.SubscriptionID(acc.SubscriptionID))
		}
		// Already inactive: the provider call is redundant and its failure
		// must not disturb the account flag.
		s.log.WarnContext(ctx, "cancel: provider rejected repeated cancellation",
			logger.SubscriptionID(acc.SubscriptionID),
			logger.Error(err),
			logger.Component("account"),
		)
	}

	if err := s.store.Update(ctx, acc.ID.Hex(), map[string]any{"inactive": true}); err != nil {
		return s.internalError(ctx, "cancel: failed to deactivate account", err,
			logger.UserID(acc.ID.Hex()))
	}

	s.log.InfoContext(ctx, "account canceled",
		logger.UserID(acc.ID.Hex()),
		logger.SubscriptionID(acc.SubscriptionID),
		logger.Component("account"),
	)
	return nil
}

// ReactivateResult is the reactivation outcome. SubscriptionID may differ
// from the account's previous one when a fresh subscription was created.
type ReactivateResult struct {
	Account        *Account
	SubscriptionID string
	Redirect       string
}

// ReactivateByEmail serves the unauthenticated reactivation path, where the
// user arrives from the /reactivate?email=... redirect.
func (s *Service) ReactivateByEmail(ctx context.Context, email string) (*ReactivateResult, error) {
	email = sanitizer.NormalizeEmail(email)

	acc, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, core.NotFound("Account not found.")
	}
	if err != nil {
		return nil, s.internalError(ctx, "reactivate: account lookup failed", err, logger.Email(email))
	}
	return s.Reactivate(ctx, acc)
}

// Reactivate restores an inactive account. A fully canceled or missing
// subscription is replaced with a brand-new trial subscription; a
// pending-cancel subscription just has the flag cleared. Reactivating an
// already-active account is a successful no-op.
func (s *Service) Reactivate(ctx context.Context, acc *Account) (*ReactivateResult, error) {
	if acc.StripeCustomerID == "" {
		return nil, core.BadRequest("No billing customer on file. Please sign up again.").
			WithRedirect(redirectSignup)
	}

	if !acc.Inactive {
		return &ReactivateResult{Account: acc, SubscriptionID: acc.SubscriptionID, Redirect: redirectDashboard}, nil
	}

	subscriptionID, err := s.restoreSubscription(ctx, acc)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, acc.ID.Hex(), map[string]any{
		"inactive":       false,
		"subscriptionId": subscriptionID,
	}); err != nil {
		return nil, s.internalError(ctx, "reactivate: failed to update account", err,
			logger.UserID(acc.ID.Hex()))
	}
	acc.Inactive = false
	acc.SubscriptionID = subscriptionID

	s.log.InfoContext(ctx, "account reactivated",
		logger.UserID(acc.ID.Hex()),
		logger.SubscriptionID(subscriptionID),
		logger.Component("account"),
	)
	return &ReactivateResult{Account: acc, SubscriptionID: subscriptionID, Redirect: redirectDashboard}, nil
}

// restoreSubscription brings the billing side back to life: clear a pending
// cancellation when the subscription survives, otherwise start a fresh
// trial on the existing customer.
func (s *Service) restoreSubscription(ctx context.Context, acc *Account) (string, error) {
	if acc.HasSubscription() {
		sub, err := s.billing.GetSubscription(ctx, acc.SubscriptionID)
		if err != nil {
			return "", s.internalError(ctx, "reactivate: failed to retrieve subscription", err,
				logger.SubscriptionID(acc.SubscriptionID))
		}
		if !sub.IsCanceled() {
			if sub.CancelAtPeriodEnd {
				if _, err := s.billing.SetCancelAtPeriodEnd(ctx, acc.SubscriptionID, false); err != nil {
					return "", s.internalError(ctx, "reactivate: failed to clear cancellation", err,
						logger.SubscriptionID(acc.SubscriptionID))
				}
			}
			return acc.SubscriptionID, nil
		}
	}

	sub, err := s.billing.CreateSubscription(ctx, acc.StripeCustomerID, s.cfg.TrialPeriodDays)
	if err != nil {
		return "", s.internalError(ctx, "reactivate: failed to create subscription", err,
			logger.UserID(acc.ID.Hex()))
	}
	return sub.ID, nil
}

// PortalSessionURL returns a pre-authenticated billing portal URL that
// brings the user back to the dashboard afterwards.
func (s *Service) PortalSessionURL(ctx context.Context, acc *Account) (string, error) {
	if acc.StripeCustomerID == "" {
		return "", core.BadRequest("No billing customer on file.")
	}

	url, err := s.billing.CreatePortalSession(ctx, acc.StripeCustomerID, s.cfg.ClientBaseURL+redirectDashboard)
	if err != nil {
		return "", s.internalError(ctx, "portal: failed to create session", err,
			logger.UserID(acc.ID.Hex()))
	}
	return url, nil
}

// SetupIntentSecret creates a card setup intent for the signup form and
// returns its client secret.
func (s *Service) SetupIntentSecret(ctx context.Context) (string, error) {
	secret, err := s.billing.CreateSetupIntent(ctx)
	if err != nil {
		return "", s.internalError(ctx, "setup intent: provider call failed", err)
	}
	return secret, nil
}
