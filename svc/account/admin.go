package account

import (
	"context"
	"errors"
	"time"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/pkg/logger"
	"github.com/launchbase/backend/svc/billing"
)

// Admin subscription actions.
const (
	ActionConvertToPaid          = "convert-to-paid"
	ActionCancelSubscription     = "cancel-subscription"
	ActionReactivateSubscription = "reactivate-subscription"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// UserView is the enriched per-user row of the admin listing: stored fields
// plus subscription state derived live from the billing provider.
type UserView struct {
	ID                 string         `json:"id"`
	Email              string         `json:"email"`
	FirstName          string         `json:"firstName,omitempty"`
	LastName           string         `json:"lastName,omitempty"`
	IsSocial           bool           `json:"isSocial"`
	OAuthProvider      string         `json:"oauthProvider,omitempty"`
	StripeCustomerID   string         `json:"stripeCustomerId,omitempty"`
	SubscriptionID     string         `json:"subscriptionId,omitempty"`
	Inactive           bool           `json:"inactive"`
	IsAdmin            bool           `json:"isAdmin"`
	CreatedAt          time.Time      `json:"createdAt"`
	Plan               billing.Plan   `json:"plan"`
	SubscriptionStatus billing.Status `json:"subscriptionStatus"`
	CancelAtPeriodEnd  bool           `json:"cancelAtPeriodEnd"`
}

// Pagination describes the page window of a listing.
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListUsersResult is one page of enriched users.
type ListUsersResult struct {
	Users      []UserView `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// ListUsers returns a page of accounts enriched with derived billing state.
// Page and limit are clamped to sane bounds; search matches email and names.
func (s *Service) ListUsers(ctx context.Context, params ListParams) (*ListUsersResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultListLimit
	}
	if params.Limit > maxListLimit {
		params.Limit = maxListLimit
	}

	res, err := s.store.List(ctx, params)
	if err != nil {
		return nil, s.internalError(ctx, "admin: failed to list users", err)
	}

	users := make([]UserView, 0, len(res.Accounts))
	for i := range res.Accounts {
		acc := &res.Accounts[i]
		status := billing.DeriveStatus(ctx, s.billing, acc.SubscriptionID, s.log)
		users = append(users, UserView{
			ID:                 acc.ID.Hex(),
			Email:              acc.Email,
			FirstName:          acc.FirstName,
			LastName:           acc.LastName,
			IsSocial:           acc.IsSocial,
			OAuthProvider:      acc.OAuthProvider,
			StripeCustomerID:   acc.StripeCustomerID,
			SubscriptionID:     acc.SubscriptionID,
			Inactive:           acc.Inactive,
			IsAdmin:            acc.IsAdmin,
			CreatedAt:          acc.CreatedAt,
			Plan:               status.Plan,
			SubscriptionStatus: status.SubscriptionStatus,
			CancelAtPeriodEnd:  status.CancelAtPeriodEnd,
		})
	}

	totalPages := res.Total / params.Limit
	if res.Total%params.Limit != 0 {
		totalPages++
	}

	return &ListUsersResult{
		Users: users,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      res.Total,
			TotalPages: totalPages,
		},
	}, nil
}

// UpdateUserStatus sets the inactive flag on a target account. Admin
// accounts cannot be deactivated.
func (s *Service) UpdateUserStatus(ctx context.Context, userID string, inactive bool) (*Account, error) {
	acc, err := s.store.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, core.NotFound("User not found.")
	}
	if err != nil {
		return nil, s.internalError(ctx, "admin: user lookup failed", err, logger.UserID(userID))
	}

	if acc.IsAdmin && inactive {
		return nil, core.BadRequest("Admin accounts cannot be deactivated.")
	}

	if err := s.store.Update(ctx, userID, map[string]any{"inactive": inactive}); err != nil {
		return nil, s.internalError(ctx, "admin: failed to update status", err, logger.UserID(userID))
	}
	acc.Inactive = inactive

	s.log.InfoContext(ctx, "admin updated account status",
		logger.UserID(userID),
		logger.Component("account"),
	)
	return acc, nil
}

// UpdateUserSubscription applies one of the admin subscription actions to a
// target account. The actions are pure billing mutations keyed on the live
// subscription status; the account's inactive flag is managed separately
// through UpdateUserStatus.
func (s *Service) UpdateUserSubscription(ctx context.Context, userID, action string) (*billing.Subscription, error) {
	acc, err := s.store.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, core.NotFound("User not found.")
	}
	if err != nil {
		return nil, s.internalError(ctx, "admin: user lookup failed", err, logger.UserID(userID))
	}
	if !acc.HasSubscription() {
		return nil, core.BadRequest("User has no subscription.")
	}

	sub, err := s.billing.GetSubscription(ctx, acc.SubscriptionID)
	if err != nil {
		return nil, s.internalError(ctx, "admin: failed to retrieve subscription", err,
			logger.SubscriptionID(acc.SubscriptionID))
	}

	switch action {
	case ActionConvertToPaid:
		if sub.Status != billing.StatusTrialing {
			return nil, core.BadRequest("Subscription is not in trial.")
		}
		sub, err = s.billing.EndTrialNow(ctx, acc.SubscriptionID)
		if err != nil {
			return nil, s.internalError(ctx, "admin: failed to end trial", err,
				logger.SubscriptionID(acc.SubscriptionID))
		}

	case ActionCancelSubscription:
		if sub.IsCanceled() || sub.CancelAtPeriodEnd {
			return nil, core.BadRequest("Subscription is already canceled.")
		}
		sub, err = s.billing.SetCancelAtPeriodEnd(ctx, acc.SubscriptionID, true)
		if err != nil {
			return nil, s.internalError(ctx, "admin: failed to schedule cancellation", err,
				logger.SubscriptionID(acc.SubscriptionID))
		}

	case ActionReactivateSubscription:
		if !sub.CancelAtPeriodEnd {
			return nil, core.BadRequest("Subscription is not set to cancel.")
		}
		sub, err = s.billing.SetCancelAtPeriodEnd(ctx, acc.SubscriptionID, false)
		if err != nil {
			return nil, s.internalError(ctx, "admin: failed to clear cancellation", err,
				logger.SubscriptionID(acc.SubscriptionID))
		}

	default:
		return nil, core.BadRequest("Unknown subscription action.")
	}

	s.log.InfoContext(ctx, "admin updated subscription",
		logger.UserID(userID),
		logger.SubscriptionID(sub.ID),
		logger.Event(action),
		logger.Component("account"),
	)
	return sub, nil
}
