package account

import "github.com/launchbase/backend/svc/billing"

// State is the explicit lifecycle state of an account, derived on demand
// from the stored flags plus live billing status. It is never persisted.
type State string

const (
	// StateNew: account exists but has never subscribed.
	StateNew State = "new"
	// StateTrialing: subscription exists and is in its free trial.
	StateTrialing State = "trialing"
	// StatePaid: subscription is active past its trial.
	StatePaid State = "paid"
	// StateCancelPending: cancellation scheduled for period end.
	StateCancelPending State = "cancel_pending"
	// StateInactive: the user canceled and must reactivate before access.
	StateInactive State = "inactive"
)

// DeriveState folds the account flags and the derived billing status into a
// single lifecycle state. Every handler precondition branches on this rather
// than re-combining the raw booleans.
func DeriveState(a *Account, status billing.DerivedStatus) State {
	switch {
	case a.Inactive:
		return StateInactive
	case !a.HasSubscription():
		return StateNew
	case status.CancelAtPeriodEnd:
		return StateCancelPending
	case status.Plan == billing.PlanTrial:
		return StateTrialing
	default:
		return StatePaid
	}
}
