package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrSubscriptionNotFound is returned by MemoryProvider for unknown ids.
var ErrSubscriptionNotFound = errors.New("billing: subscription not found")

// MemoryProvider is an in-memory Provider for tests and local development.
// Operations can be made to fail by registering an error under the operation
// name in Errs.
type MemoryProvider struct {
	mu        sync.Mutex
	customers map[string]CustomerParams
	subs      map[string]*Subscription
	seq       int

	// Errs maps operation names (create_customer, get_subscription, ...) to
	// injected failures.
	Errs map[string]error

	// TrialDays mirrors the trial length applied to new subscriptions.
	TrialDays int64
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		customers: make(map[string]CustomerParams),
		subs:      make(map[string]*Subscription),
		Errs:      make(map[string]error),
		TrialDays: 14,
	}
}

func (p *MemoryProvider) fail(op string) error {
	if err, ok := p.Errs[op]; ok {
		return err
	}
	return nil
}

func (p *MemoryProvider) CreateCustomer(_ context.Context, params CustomerParams) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("create_customer"); err != nil {
		return "", err
	}
	p.seq++
	id := fmt.Sprintf("cus_%03d", p.seq)
	p.customers[id] = params
	return id, nil
}

func (p *MemoryProvider) UpdateCustomer(_ context.Context, customerID string, params CustomerParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("update_customer"); err != nil {
		return err
	}
	p.customers[customerID] = params
	return nil
}

func (p *MemoryProvider) AttachPaymentMethod(_ context.Context, customerID, paymentMethodID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fail("attach_payment_method")
}

func (p *MemoryProvider) CreateSubscription(_ context.Context, customerID string, trialDays int64) (*Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("create_subscription"); err != nil {
		return nil, err
	}
	p.seq++
	sub := &Subscription{
		ID:     fmt.Sprintf("sub_%03d", p.seq),
		Status: StatusActive,
	}
	if trialDays > 0 {
		sub.Status = StatusTrialing
		sub.TrialEnd = time.Now().Add(time.Duration(trialDays) * 24 * time.Hour)
	}
	p.subs[sub.ID] = sub
	return cloneSub(sub), nil
}

func (p *MemoryProvider) GetSubscription(_ context.Context, subscriptionID string) (*Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("get_subscription"); err != nil {
		return nil, err
	}
	sub, ok := p.subs[subscriptionID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	return cloneSub(sub), nil
}

func (p *MemoryProvider) EndTrialNow(_ context.Context, subscriptionID string) (*Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("end_trial_now"); err != nil {
		return nil, err
	}
	sub, ok := p.subs[subscriptionID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	sub.Status = StatusActive
	sub.TrialEnd = time.Time{}
	sub.CancelAtPeriodEnd = false
	return cloneSub(sub), nil
}

func (p *MemoryProvider) SetCancelAtPeriodEnd(_ context.Context, subscriptionID string, cancel bool) (*Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("set_cancel_at_period_end"); err != nil {
		return nil, err
	}
	sub, ok := p.subs[subscriptionID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	sub.CancelAtPeriodEnd = cancel
	return cloneSub(sub), nil
}

func (p *MemoryProvider) CreatePortalSession(_ context.Context, customerID, returnURL string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("create_portal_session"); err != nil {
		return "", err
	}
	return "https://billing.example.com/portal/" + customerID, nil
}

func (p *MemoryProvider) CreateSetupIntent(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail("create_setup_intent"); err != nil {
		return "", err
	}
	p.seq++
	return fmt.Sprintf("seti_%03d_secret", p.seq), nil
}

// MarkCanceled force-cancels a subscription, simulating a subscription that
// reached the end of its cancellation period.
func (p *MemoryProvider) MarkCanceled(subscriptionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if sub, ok := p.subs[subscriptionID]; ok {
		sub.Status = StatusCanceled
		sub.CancelAtPeriodEnd = false
	}
}

func cloneSub(s *Subscription) *Subscription {
	cp := *s
	return &cp
}

var _ Provider = (*MemoryProvider)(nil)
