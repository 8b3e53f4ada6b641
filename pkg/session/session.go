package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side session record keyed by a cookie-carried token.
// It carries the authenticated user's identity; anonymous sessions are not
// persisted.
type Session struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Token     string    `bson:"token" json:"token"`
	UserID    string    `bson:"userId" json:"userId"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// New creates a session for the given user with a fixed TTL.
func New(token, userID, email string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}
