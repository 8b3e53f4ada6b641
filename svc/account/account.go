package account

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account is one document per user in the accounts collection. Subscription
// state is deliberately absent: the document stores only the pointer
// (SubscriptionID) and the billing provider is asked for live state on every
// access decision.
type Account struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string        `bson:"email" json:"email"`
	Password         string        `bson:"password,omitempty" json:"-"`
	FirstName        string        `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName         string        `bson:"lastName,omitempty" json:"lastName,omitempty"`
	IsSocial         bool          `bson:"isSocial" json:"isSocial"`
	OAuthProvider    string        `bson:"oauthProvider,omitempty" json:"oauthProvider,omitempty"`
	StripeCustomerID string        `bson:"stripeCustomerId,omitempty" json:"-"`
	SubscriptionID   string        `bson:"subscriptionId,omitempty" json:"-"`
	Inactive         bool          `bson:"inactive" json:"inactive"`
	IsAdmin          bool          `bson:"isAdmin" json:"isAdmin"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// AuthProvider names the authentication method bound to the account. The
// binding is sticky: once established, mismatched login attempts are
// rejected rather than merged.
func (a *Account) AuthProvider() string {
	if a.OAuthProvider != "" {
		return a.OAuthProvider
	}
	if a.IsSocial {
		return "social"
	}
	return "password"
}

// HasSubscription reports whether the account ever subscribed. A missing id
// is distinct from a canceled subscription, which retains its id.
func (a *Account) HasSubscription() bool {
	return a.SubscriptionID != ""
}
