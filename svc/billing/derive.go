package billing

import (
	"context"
	"log/slog"
	"time"

	"github.com/launchbase/backend/pkg/logger"
)

// Plan is the derived billing tier.
type Plan string

const (
	PlanTrial Plan = "trial"
	PlanPaid  Plan = "paid"
)

// DerivedStatus is the plan/status view computed on demand from the
// provider. It is never stored: the account record only holds the
// subscription id, and every access decision re-derives live state.
type DerivedStatus struct {
	Plan               Plan   `json:"plan"`
	SubscriptionStatus Status `json:"subscriptionStatus"`
	CancelAtPeriodEnd  bool   `json:"cancelAtPeriodEnd"`
}

// DeriveStatus resolves the current plan and status for a subscription id.
//
// A missing id means "never subscribed" and reports trial/none. A provider
// failure is non-fatal: it reports trial/error so the account stays usable
// while billing UI shows the degraded state.
func DeriveStatus(ctx context.Context, p Provider, subscriptionID string, log *slog.Logger) DerivedStatus {
	if subscriptionID == "" {
		return DerivedStatus{Plan: PlanTrial, SubscriptionStatus: StatusNone}
	}

	sub, err := p.GetSubscription(ctx, subscriptionID)
	if err != nil {
		log.ErrorContext(ctx, "failed to retrieve subscription",
			logger.SubscriptionID(subscriptionID),
			logger.Error(err),
			logger.Component("billing"),
		)
		return DerivedStatus{Plan: PlanTrial, SubscriptionStatus: StatusError}
	}

	plan := PlanPaid
	if sub.InTrial(time.Now()) {
		plan = PlanTrial
	}

	return DerivedStatus{
		Plan:               plan,
		SubscriptionStatus: sub.Status,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	}
}
