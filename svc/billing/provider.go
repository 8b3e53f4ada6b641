package billing

import (
	"context"
	"time"
)

// Provider defines the minimal interface for the hosted billing API. The
// abstraction keeps Stripe types out of the orchestrator and lets tests run
// against an in-memory double. The provider is the sole authority for
// trial/paid/canceled state; the account record only holds pointers to it.
type Provider interface {
	// CreateCustomer creates a billing customer with an attached default
	// payment method and returns its id.
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)

	// UpdateCustomer updates name and default payment method on an existing
	// customer.
	UpdateCustomer(ctx context.Context, customerID string, params CustomerParams) error

	// AttachPaymentMethod attaches a payment method to an existing customer.
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error

	// CreateSubscription creates a subscription on the configured price.
	// With trialDays > 0 the subscription starts in a free trial.
	CreateSubscription(ctx context.Context, customerID string, trialDays int64) (*Subscription, error)

	// GetSubscription retrieves the live subscription state.
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)

	// EndTrialNow ends the trial immediately and clears any pending
	// cancellation, converting the subscription to paid.
	EndTrialNow(ctx context.Context, subscriptionID string) (*Subscription, error)

	// SetCancelAtPeriodEnd flips the pending-cancellation flag.
	SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*Subscription, error)

	// CreatePortalSession returns a pre-authenticated customer portal URL.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)

	// CreateSetupIntent creates a card setup intent and returns its client
	// secret for the signup form.
	CreateSetupIntent(ctx context.Context) (string, error)
}

// CustomerParams carries the customer fields the application manages.
type CustomerParams struct {
	Email           string
	Name            string // optional display name
	PaymentMethodID string
}

// Status is the provider's subscription status, normalized to strings the
// rest of the application branches on.
type Status string

const (
	StatusTrialing Status = "trialing"
	StatusActive   Status = "active"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"

	// StatusNone is reported when an account has never subscribed.
	StatusNone Status = "none"
	// StatusError is reported when the provider call failed; the account
	// stays usable but billing UI degrades to an error indicator.
	StatusError Status = "error"
)

// Subscription is the normalized view of a provider subscription.
type Subscription struct {
	ID                string
	Status            Status
	CancelAtPeriodEnd bool
	TrialEnd          time.Time // zero when the subscription has no trial
}

// IsCanceled reports whether the subscription has been fully canceled
// (as opposed to pending cancellation at period end).
func (s *Subscription) IsCanceled() bool {
	return s.Status == StatusCanceled
}

// InTrial reports whether the subscription is trialing at the given time.
// Stripe keeps trial_end set after conversion, so both the status and the
// timestamp are consulted.
func (s *Subscription) InTrial(now time.Time) bool {
	if s.Status == StatusTrialing {
		return true
	}
	return !s.TrialEnd.IsZero() && s.TrialEnd.After(now)
}
