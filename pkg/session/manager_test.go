package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/pkg/cookie"
	"github.com/launchbase/backend/pkg/session"
)

func setupManager(t *testing.T, ttl time.Duration) *session.Manager {
	t.Helper()
	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	return session.NewManager(session.NewMemoryStore(), cookieMgr, session.Config{
		CookieName: "test-sid",
		TTL:        ttl,
	})
}

func withCookies(w *httptest.ResponseRecorder, r *http.Request) *http.Request {
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestManager_Authenticate(t *testing.T) {
	manager := setupManager(t, time.Hour)
	ctx := context.Background()

	t.Run("creates session and sets cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		sess, err := manager.Authenticate(ctx, w, r, "user-1", "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", sess.UserID)
		assert.Equal(t, "a@x.com", sess.Email)
		assert.NotEmpty(t, sess.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test-sid", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("rotates token on re-login", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		sess1, err := manager.Authenticate(ctx, w1, httptest.NewRequest(http.MethodPost, "/login", nil), "user-2", "b@x.com")
		require.NoError(t, err)

		r2 := withCookies(w1, httptest.NewRequest(http.MethodPost, "/login", nil))
		w2 := httptest.NewRecorder()
		sess2, err := manager.Authenticate(ctx, w2, r2, "user-2", "b@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, sess1.Token, sess2.Token)

		// Old token no longer resolves.
		r3 := withCookies(w1, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err = manager.Get(ctx, r3)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestManager_Get(t *testing.T) {
	manager := setupManager(t, time.Hour)
	ctx := context.Background()

	t.Run("resolves live session", func(t *testing.T) {
		w := httptest.NewRecorder()
		sess, err := manager.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), "user-1", "a@x.com")
		require.NoError(t, err)

		r := withCookies(w, httptest.NewRequest(http.MethodGet, "/", nil))
		got, err := manager.Get(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
		assert.Equal(t, "a@x.com", got.Email)
	})

	t.Run("no cookie", func(t *testing.T) {
		_, err := manager.Get(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("forged cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test-sid", Value: "forged"})
		_, err := manager.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		short := setupManager(t, time.Millisecond)
		w := httptest.NewRecorder()
		_, err := short.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), "user-1", "a@x.com")
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		r := withCookies(w, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err = short.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestManager_Destroy(t *testing.T) {
	manager := setupManager(t, time.Hour)
	ctx := context.Background()

	w1 := httptest.NewRecorder()
	_, err := manager.Authenticate(ctx, w1, httptest.NewRequest(http.MethodPost, "/login", nil), "user-1", "a@x.com")
	require.NoError(t, err)

	r := withCookies(w1, httptest.NewRequest(http.MethodGet, "/logout", nil))
	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Destroy(ctx, w2, r))

	// Cookie is cleared.
	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)

	// Session is gone.
	_, err = manager.Get(ctx, r)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
