package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/pkg/cookie"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	t.Run("rejects empty secrets", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestSignedRoundTrip(t *testing.T) {
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.SetSigned(w, "sid", "token-value", cookie.WithMaxAge(60))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := m.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
}

func TestGetSigned_Tampered(t *testing.T) {
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.SetSigned(w, "sid", "token-value")
	signed := w.Result().Cookies()[0].Value

	tampered := strings.Replace(signed, ".", "x.", 1)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: tampered})

	_, err = m.GetSigned(r, "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestGetSigned_RotatedSecrets(t *testing.T) {
	old, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	old.SetSigned(w, "sid", "token-value")

	// New manager signs with a fresh secret but still verifies the old one.
	rotated, err := cookie.New([]string{"fedcba9876543210fedcba9876543210", testSecret})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := rotated.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
}

func TestGetSigned_Missing(t *testing.T) {
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err = m.GetSigned(r, "sid")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}
