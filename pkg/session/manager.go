package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/launchbase/backend/pkg/cookie"
)

// Manager handles session lifecycle over a signed cookie transport.
type Manager struct {
	store   Store
	cookies *cookie.Manager
	config  Config
}

// NewManager creates a session manager. The cookie manager is required; the
// store defaults to an in-memory implementation suitable for tests only.
func NewManager(store Store, cookies *cookie.Manager, cfg Config) *Manager {
	if cookies == nil {
		panic("session: cookie manager is required")
	}
	if store == nil {
		store = NewMemoryStore()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultConfig().CookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Manager{store: store, cookies: cookies, config: cfg}
}

// Authenticate starts a fresh session for the user and sets the session
// cookie. Any session already bound to the request cookie is discarded, so a
// login always rotates the token.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID, email string) (*Session, error) {
	if old, err := m.cookies.GetSigned(r, m.config.CookieName); err == nil {
		_ = m.store.Delete(ctx, old)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	sess := New(token, userID, email, m.config.TTL)
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	m.cookies.SetSigned(w, m.config.CookieName, token,
		cookie.WithMaxAge(int(m.config.TTL.Seconds())),
		cookie.WithSecure(m.config.SecureCookies),
	)
	return sess, nil
}

// Get resolves the session bound to the request cookie.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.cookies.GetSigned(r, m.config.CookieName)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		_ = m.store.Delete(ctx, token)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Destroy removes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.cookies.GetSigned(r, m.config.CookieName)
	if err == nil && token != "" {
		if derr := m.store.Delete(ctx, token); derr != nil && !errors.Is(derr, ErrSessionNotFound) {
			return derr
		}
	}
	m.cookies.Delete(w, m.config.CookieName)
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
