package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchbase/backend/svc/account"
	"github.com/launchbase/backend/svc/billing"
)

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name   string
		acc    account.Account
		status billing.DerivedStatus
		want   account.State
	}{
		{
			name: "inactive wins over everything",
			acc:  account.Account{Inactive: true, SubscriptionID: "sub_001"},
			status: billing.DerivedStatus{
				Plan:               billing.PlanPaid,
				SubscriptionStatus: billing.StatusActive,
			},
			want: account.StateInactive,
		},
		{
			name:   "never subscribed",
			acc:    account.Account{},
			status: billing.DerivedStatus{Plan: billing.PlanTrial, SubscriptionStatus: billing.StatusNone},
			want:   account.StateNew,
		},
		{
			name: "pending cancellation",
			acc:  account.Account{SubscriptionID: "sub_001"},
			status: billing.DerivedStatus{
				Plan:               billing.PlanPaid,
				SubscriptionStatus: billing.StatusActive,
				CancelAtPeriodEnd:  true,
			},
			want: account.StateCancelPending,
		},
		{
			name: "in trial",
			acc:  account.Account{SubscriptionID: "sub_001"},
			status: billing.DerivedStatus{
				Plan:               billing.PlanTrial,
				SubscriptionStatus: billing.StatusTrialing,
			},
			want: account.StateTrialing,
		},
		{
			name: "paid",
			acc:  account.Account{SubscriptionID: "sub_001"},
			status: billing.DerivedStatus{
				Plan:               billing.PlanPaid,
				SubscriptionStatus: billing.StatusActive,
			},
			want: account.StatePaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, account.DeriveState(&tt.acc, tt.status))
		})
	}
}

func TestAuthProvider(t *testing.T) {
	assert.Equal(t, "google", (&account.Account{IsSocial: true, OAuthProvider: "google"}).AuthProvider())
	assert.Equal(t, "social", (&account.Account{IsSocial: true}).AuthProvider())
	assert.Equal(t, "password", (&account.Account{}).AuthProvider())
}
