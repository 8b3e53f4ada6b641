package billing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/svc/billing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeriveStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscription id reports trial none", func(t *testing.T) {
		got := billing.DeriveStatus(ctx, billing.NewMemoryProvider(), "", discardLogger())
		assert.Equal(t, billing.DerivedStatus{
			Plan:               billing.PlanTrial,
			SubscriptionStatus: billing.StatusNone,
		}, got)
	})

	t.Run("provider failure degrades to error status", func(t *testing.T) {
		p := billing.NewMemoryProvider()
		p.Errs["get_subscription"] = errors.New("api unreachable")

		got := billing.DeriveStatus(ctx, p, "sub_001", discardLogger())
		assert.Equal(t, billing.PlanTrial, got.Plan)
		assert.Equal(t, billing.StatusError, got.SubscriptionStatus)
	})

	t.Run("trialing subscription reports trial plan", func(t *testing.T) {
		p := billing.NewMemoryProvider()
		sub, err := p.CreateSubscription(ctx, "cus_001", 14)
		require.NoError(t, err)

		got := billing.DeriveStatus(ctx, p, sub.ID, discardLogger())
		assert.Equal(t, billing.PlanTrial, got.Plan)
		assert.Equal(t, billing.StatusTrialing, got.SubscriptionStatus)
		assert.False(t, got.CancelAtPeriodEnd)
	})

	t.Run("converted subscription reports paid plan", func(t *testing.T) {
		p := billing.NewMemoryProvider()
		sub, err := p.CreateSubscription(ctx, "cus_001", 14)
		require.NoError(t, err)
		_, err = p.EndTrialNow(ctx, sub.ID)
		require.NoError(t, err)

		got := billing.DeriveStatus(ctx, p, sub.ID, discardLogger())
		assert.Equal(t, billing.PlanPaid, got.Plan)
		assert.Equal(t, billing.StatusActive, got.SubscriptionStatus)
	})

	t.Run("pending cancellation is surfaced", func(t *testing.T) {
		p := billing.NewMemoryProvider()
		sub, err := p.CreateSubscription(ctx, "cus_001", 0)
		require.NoError(t, err)
		_, err = p.SetCancelAtPeriodEnd(ctx, sub.ID, true)
		require.NoError(t, err)

		got := billing.DeriveStatus(ctx, p, sub.ID, discardLogger())
		assert.True(t, got.CancelAtPeriodEnd)
		assert.Equal(t, billing.PlanPaid, got.Plan)
	})
}
