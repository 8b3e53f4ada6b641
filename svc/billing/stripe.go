package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// stripeProvider implements Provider over the official Stripe SDK.
type stripeProvider struct {
	api *client.API
	cfg Config
}

// NewStripeProvider creates a Provider backed by the Stripe API.
func NewStripeProvider(cfg Config) Provider {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeProvider{api: api, cfg: cfg}
}

func (p *stripeProvider) CreateCustomer(ctx context.Context, params CustomerParams) (string, error) {
	cp := &stripe.CustomerParams{
		Params:        stripe.Params{Context: ctx},
		Email:         stripe.String(params.Email),
		PaymentMethod: stripe.String(params.PaymentMethodID),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(params.PaymentMethodID),
		},
	}
	if params.Name != "" {
		cp.Name = stripe.String(params.Name)
	}

	customer, err := p.api.Customers.New(cp)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create customer: %w", err)
	}
	return customer.ID, nil
}

func (p *stripeProvider) UpdateCustomer(ctx context.Context, customerID string, params CustomerParams) error {
	cp := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(params.PaymentMethodID),
		},
	}
	if params.Name != "" {
		cp.Name = stripe.String(params.Name)
	}

	if _, err := p.api.Customers.Update(customerID, cp); err != nil {
		return fmt.Errorf("stripe: failed to update customer: %w", err)
	}
	return nil
}

func (p *stripeProvider) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	_, err := p.api.PaymentMethods.Attach(paymentMethodID, &stripe.PaymentMethodAttachParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	})
	if err != nil {
		return fmt.Errorf("stripe: failed to attach payment method: %w", err)
	}
	return nil
}

func (p *stripeProvider) CreateSubscription(ctx context.Context, customerID string, trialDays int64) (*Subscription, error) {
	sp := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(p.cfg.TrialPriceID)},
		},
	}
	if trialDays > 0 {
		sp.TrialPeriodDays = stripe.Int64(trialDays)
	}

	sub, err := p.api.Subscriptions.New(sp)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to create subscription: %w", err)
	}
	return fromStripeSubscription(sub), nil
}

func (p *stripeProvider) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, err := p.api.Subscriptions.Get(subscriptionID, &stripe.SubscriptionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to retrieve subscription: %w", err)
	}
	return fromStripeSubscription(sub), nil
}

func (p *stripeProvider) EndTrialNow(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, err := p.api.Subscriptions.Update(subscriptionID, &stripe.SubscriptionParams{
		Params:            stripe.Params{Context: ctx},
		TrialEndNow:       stripe.Bool(true),
		CancelAtPeriodEnd: stripe.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to end trial: %w", err)
	}
	return fromStripeSubscription(sub), nil
}

func (p *stripeProvider) SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*Subscription, error) {
	sub, err := p.api.Subscriptions.Update(subscriptionID, &stripe.SubscriptionParams{
		Params:            stripe.Params{Context: ctx},
		CancelAtPeriodEnd: stripe.Bool(cancel),
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to update cancellation: %w", err)
	}
	return fromStripeSubscription(sub), nil
}

func (p *stripeProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	sess, err := p.api.BillingPortalSessions.New(&stripe.BillingPortalSessionParams{
		Params:    stripe.Params{Context: ctx},
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create portal session: %w", err)
	}
	return sess.URL, nil
}

func (p *stripeProvider) CreateSetupIntent(ctx context.Context) (string, error) {
	si, err := p.api.SetupIntents.New(&stripe.SetupIntentParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create setup intent: %w", err)
	}
	return si.ClientSecret, nil
}

func fromStripeSubscription(sub *stripe.Subscription) *Subscription {
	s := &Subscription{
		ID:                sub.ID,
		Status:            Status(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.TrialEnd > 0 {
		s.TrialEnd = time.Unix(sub.TrialEnd, 0)
	}
	return s
}

var _ Provider = (*stripeProvider)(nil)
