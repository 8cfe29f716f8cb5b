package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitara.io/store/driver"
	"sitara.io/store/gateway"
	"sitara.io/store/models/enum"
	"sitara.io/store/query"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, driver.KV, *query.Cache) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	kv := driver.NewMemKV()
	cache := query.NewCache(kv, zap.NewNop())
	m := NewManager(kv, cache, zap.NewNop())

	gw, err := gateway.NewClient(srv.URL, srv.Client(), m, zap.NewNop())
	require.NoError(t, err)
	m.AttachGateway(gw)
	return m, kv, cache
}

func authHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"tok-9","user":{"id":3,"name":"مدير","email":"admin@adhlal.sa","role":"admin"}}}`))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})
	return mux
}

func TestLoginStoresSession(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t, authHandler(t))

	auth, err := m.Login(ctx, "admin@adhlal.sa", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", auth.Token)

	assert.Equal(t, "tok-9", m.Token(ctx))
	user := m.CurrentUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "admin@adhlal.sa", user.Email)
}

func TestLogoutClearsSessionAndCache(t *testing.T) {
	ctx := context.Background()
	m, _, cache := newTestManager(t, authHandler(t))

	_, err := m.Login(ctx, "admin@adhlal.sa", "secret")
	require.NoError(t, err)
	cache.Set(ctx, "admin-orders", []int{1, 2}, query.ListTTL)

	require.NoError(t, m.Logout(ctx))

	assert.Empty(t, m.Token(ctx))
	assert.Nil(t, m.CurrentUser(ctx))
	var out []int
	assert.False(t, cache.Get(ctx, "admin-orders", &out), "logout evicts cached queries")
}

func TestLogoutClearsEvenWhenRequestFails(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"tok-9","user":{"id":3}}}`))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	m, _, _ := newTestManager(t, mux)

	_, err := m.Login(ctx, "admin@adhlal.sa", "secret")
	require.NoError(t, err)

	require.Error(t, m.Logout(ctx))
	assert.Empty(t, m.Token(ctx))
}

func TestUnauthorizedHook(t *testing.T) {
	ctx := context.Background()
	m, kv, _ := newTestManager(t, authHandler(t))
	require.NoError(t, kv.Set(ctx, tokenKey, "expired", 0))

	m.Unauthorized("/admin/orders")

	assert.Empty(t, m.Token(ctx))
	path, ok := m.LoginRedirect()
	require.True(t, ok)
	assert.Equal(t, "/admin/orders", path)
}

func TestLoginClearsPendingRedirect(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t, authHandler(t))

	m.Unauthorized("/admin/settings")
	_, err := m.Login(ctx, "admin@adhlal.sa", "secret")
	require.NoError(t, err)

	_, ok := m.LoginRedirect()
	assert.False(t, ok)
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t, authHandler(t))

	t.Run("locale defaults to arabic", func(t *testing.T) {
		assert.Equal(t, "ar", m.Locale(ctx))
	})

	t.Run("locale round-trips", func(t *testing.T) {
		require.NoError(t, m.SetLocale(ctx, "en"))
		assert.Equal(t, "en", m.Locale(ctx))
	})

	t.Run("theme defaults to light and toggles", func(t *testing.T) {
		assert.Equal(t, enum.ThemeLight, m.Theme(ctx))

		next, err := m.ToggleTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeDark, next)
		assert.Equal(t, enum.ThemeDark, m.Theme(ctx))

		next, err = m.ToggleTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, enum.ThemeLight, next)
	})
}
