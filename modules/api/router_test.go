package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/modules/api"
	"github.com/launchbase/backend/pkg/cookie"
	"github.com/launchbase/backend/pkg/session"
	"github.com/launchbase/backend/svc/account"
	"github.com/launchbase/backend/svc/billing"
	"github.com/launchbase/backend/svc/oauth"
)

type fakeAdapter struct {
	id      string
	profile oauth.Profile
	err     error
}

func (f *fakeAdapter) ProviderID() string { return f.id }

func (f *fakeAdapter) AuthURL(state string) string {
	return "https://provider.test/auth?state=" + state
}

func (f *fakeAdapter) ResolveProfile(context.Context, string) (oauth.Profile, error) {
	return f.profile, f.err
}

type testEnv struct {
	server   *httptest.Server
	client   *http.Client
	store    *account.MemoryStore
	provider *billing.MemoryProvider
	adapter  *fakeAdapter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := account.NewMemoryStore()
	provider := billing.NewMemoryProvider()
	svc := account.NewService(store, provider, account.Config{
		PasswordSalt:    "pepper",
		ClientBaseURL:   "http://app.test",
		TrialPeriodDays: 14,
	}, nil)

	cookies, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	sessions := session.NewManager(session.NewMemoryStore(), cookies, session.DefaultConfig())

	adapter := &fakeAdapter{id: oauth.ProviderGoogle}
	m := api.New(svc, sessions, cookies, []oauth.ProviderAdapter{adapter}, nil, api.Config{
		StripePublishableKey: "pk_test_123",
	}, nil)

	server := httptest.NewServer(m.Router())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testEnv{server: server, client: client, store: store, provider: provider, adapter: adapter}
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := e.client.Post(e.server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := e.client.Get(e.server.URL + path)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return resp, decodeBody(t, resp)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp, nil
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (e *testEnv) signup(t *testing.T, email string) {
	t.Helper()
	resp, body := e.postJSON(t, "/account/signup", map[string]any{
		"email":           email,
		"password":        "secret-password",
		"paymentMethodId": "pm_card_visa",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
}

func TestSignupAndMe(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@x.com")

	resp, body := env.get(t, "/auth/me")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "trial", user["plan"])
	assert.Equal(t, "trialing", user["subscriptionStatus"])
	assert.NotContains(t, user, "password")
}

func TestLogin(t *testing.T) {
	t.Run("unknown email signals signup without error", func(t *testing.T) {
		env := newTestEnv(t)

		resp, body := env.postJSON(t, "/auth/login", map[string]any{
			"email":    "nobody@x.com",
			"password": "whatever-pass",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "/signup", body["redirect"])
	})

	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")
		_, _ = env.get(t, "/auth/logout")

		resp, body := env.postJSON(t, "/auth/login", map[string]any{
			"email":    "a@x.com",
			"password": "secret-password",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "/@", body["redirect"])

		resp, _ = env.get(t, "/auth/me")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")

		resp, body := env.postJSON(t, "/auth/login", map[string]any{
			"email":    "a@x.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.NotEmpty(t, body["error"])
	})
}

func TestSecuredTier(t *testing.T) {
	t.Run("missing session is unauthorized with login redirect", func(t *testing.T) {
		env := newTestEnv(t)

		resp, body := env.get(t, "/auth/me")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "/login", body["redirect"])
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")

		resp, _ := env.get(t, "/auth/logout")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = env.get(t, "/auth/me")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("inactive account is forbidden with reactivate redirect", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")

		resp, body := env.postJSON(t, "/account/cancel", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["inactive"])

		resp, body = env.get(t, "/auth/me")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "/reactivate?email=a%40x.com", body["redirect"])
	})
}

func TestCancelAndReactivate(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@x.com")

	resp, _ := env.postJSON(t, "/account/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.postJSON(t, "/account/reactivate", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["inactive"])

	resp, _ = env.get(t, "/auth/me")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestConvertToPaid(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@x.com")

	resp, body := env.postJSON(t, "/account/convert-to-paid", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "active", body["subscriptionStatus"])

	resp, body = env.postJSON(t, "/account/convert-to-paid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestStripeEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("config exposes the publishable key", func(t *testing.T) {
		resp, body := env.get(t, "/auth/stripe-config")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pk_test_123", body["publishableKey"])
	})

	t.Run("setup intent returns a client secret", func(t *testing.T) {
		resp, body := env.postJSON(t, "/auth/stripe-create-setup-intent", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["clientSecret"])
	})
}

func TestPortalSession(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@x.com")

	resp, body := env.postJSON(t, "/account/create-stripe-portal-session-url", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["url"], "https://billing.example.com/portal/")
}

func TestAdminTier(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin is forbidden with dashboard redirect", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "a@x.com")

		resp, body := env.get(t, "/admin/users")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "/@", body["redirect"])
	})

	t.Run("admin lists and manages users", func(t *testing.T) {
		env := newTestEnv(t)
		env.signup(t, "root@x.com")
		admin, err := env.store.FindByEmail(ctx, "root@x.com")
		require.NoError(t, err)
		require.NoError(t, env.store.Update(ctx, admin.ID.Hex(), map[string]any{"isAdmin": true}))

		for i := 0; i < 3; i++ {
			acc := &account.Account{Email: fmt.Sprintf("user%d@x.com", i)}
			require.NoError(t, env.store.Insert(ctx, acc))
		}

		resp, body := env.get(t, "/admin/users?page=1&limit=2")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["users"], 2)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(4), pagination["total"])
		assert.Equal(t, float64(2), pagination["totalPages"])

		target, err := env.store.FindByEmail(ctx, "user0@x.com")
		require.NoError(t, err)
		resp, body = env.postJSON(t, "/admin/users/update-status", map[string]any{
			"userId":   target.ID.Hex(),
			"inactive": true,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["inactive"])

		resp, body = env.postJSON(t, "/admin/users/update-status", map[string]any{
			"userId":   admin.ID.Hex(),
			"inactive": true,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, body["error"])
	})
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Get(env.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOAuthFlow(t *testing.T) {
	t.Run("begin sets state cookie and redirects to provider", func(t *testing.T) {
		env := newTestEnv(t)

		resp, _ := env.get(t, "/auth/google")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		loc := resp.Header.Get("Location")
		assert.Contains(t, loc, "https://provider.test/auth?state=")
	})

	t.Run("callback with unknown email redirects to prefilled signup", func(t *testing.T) {
		env := newTestEnv(t)
		env.adapter.profile = oauth.Profile{Email: "s@x.com", FirstName: "Sam", LastName: "Lee"}

		resp, _ := env.get(t, "/auth/google")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		state := strings.TrimPrefix(resp.Header.Get("Location"), "https://provider.test/auth?state=")

		resp, _ = env.get(t, "/auth/google/callback?code=good-code&state="+state)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t,
			"/signup?email=s%40x.com&firstName=Sam&lastName=Lee&oauthProvider=google&social=true",
			resp.Header.Get("Location"))
	})

	t.Run("callback with mismatched state redirects to login", func(t *testing.T) {
		env := newTestEnv(t)

		resp, _ := env.get(t, "/auth/google")
		require.Equal(t, http.StatusFound, resp.StatusCode)

		resp, _ = env.get(t, "/auth/google/callback?code=good-code&state=forged")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("callback logs in a matching social account", func(t *testing.T) {
		env := newTestEnv(t)
		env.adapter.profile = oauth.Profile{Email: "s@x.com", FirstName: "Sam"}

		resp, body := env.postJSON(t, "/account/signup", map[string]any{
			"email":           "s@x.com",
			"paymentMethodId": "pm_card_visa",
			"social":          true,
			"oauthProvider":   "google",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, body["success"])
		_, _ = env.get(t, "/auth/logout")

		resp, _ = env.get(t, "/auth/google")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		state := strings.TrimPrefix(resp.Header.Get("Location"), "https://provider.test/auth?state=")

		resp, _ = env.get(t, "/auth/google/callback?code=good-code&state="+state)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/@", resp.Header.Get("Location"))

		resp, _ = env.get(t, "/auth/me")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
