// Package session holds the process-wide read-mostly state: the auth token,
// the cached user profile and the locale/theme preferences, all persisted in
// the key-value store. It is set at login, read by every outgoing request and
// cleared at logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"sitara.io/store/driver"
	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
	"sitara.io/store/query"
)

const (
	tokenKey  = "auth:token"
	userKey   = "auth:user"
	localeKey = "pref:locale"
	themeKey  = "pref:theme"

	// DefaultLocale is Arabic; the storefront is Arabic first.
	DefaultLocale = "ar"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Manager owns the session state. It implements gateway.CredentialSource so
// the client picks up the token and locale on every request and learns about
// rejected credentials.
type Manager struct {
	kv     driver.KV
	cache  *query.Cache
	logger *zap.Logger

	gw *gateway.Client

	mu            sync.Mutex
	loginRedirect string
}

var _ gateway.CredentialSource = (*Manager)(nil)

func NewManager(kv driver.KV, cache *query.Cache, logger *zap.Logger) *Manager {
	return &Manager{kv: kv, cache: cache, logger: logger}
}

// AttachGateway hands the manager the client it uses for the auth endpoints.
// The client is built after the manager because it needs the manager as its
// credential source.
func (m *Manager) AttachGateway(gw *gateway.Client) {
	m.gw = gw
}

// Token returns the stored bearer token, or "" when unauthenticated.
func (m *Manager) Token(ctx context.Context) string {
	val, err := m.kv.Get(ctx, tokenKey)
	if err != nil {
		if err != driver.ErrKeyNotFound {
			m.logger.Warn("token read failed", zap.Error(err))
		}
		return ""
	}
	return val
}

// Locale returns the stored locale preference, defaulting to Arabic.
func (m *Manager) Locale(ctx context.Context) string {
	val, err := m.kv.Get(ctx, localeKey)
	if err != nil || val == "" {
		return DefaultLocale
	}
	return val
}

// SetLocale persists the locale preference used for Accept-Language.
func (m *Manager) SetLocale(ctx context.Context, locale string) error {
	if err := m.kv.Set(ctx, localeKey, locale, 0); err != nil {
		return fmt.Errorf("persist locale: %w", err)
	}
	return nil
}

// Theme returns the stored theme preference, defaulting to light.
func (m *Manager) Theme(ctx context.Context) enum.Theme {
	val, err := m.kv.Get(ctx, themeKey)
	if err != nil || val == "" {
		return enum.ThemeLight
	}
	return enum.Theme(val)
}

// ToggleTheme flips and persists the theme, returning the new value.
func (m *Manager) ToggleTheme(ctx context.Context) (enum.Theme, error) {
	next := m.Theme(ctx).Toggle()
	if err := m.kv.Set(ctx, themeKey, string(next), 0); err != nil {
		return next, fmt.Errorf("persist theme: %w", err)
	}
	return next, nil
}

// CurrentUser returns the cached profile of the logged-in user, or nil when
// none is stored or the stored profile is malformed.
func (m *Manager) CurrentUser(ctx context.Context) *models.User {
	raw, err := m.kv.Get(ctx, userKey)
	if err != nil {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Warn("stored user profile malformed", zap.Error(err))
		return nil
	}
	return &user
}

// Login authenticates against the backend and stores the returned token and
// user profile on success.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.AuthSession, error) {
	var auth models.AuthSession
	if err := m.gw.Post(ctx, "/auth/login", credentials{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}

	if err := m.kv.Set(ctx, tokenKey, auth.Token, 0); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	if raw, err := json.Marshal(auth.User); err == nil {
		if err := m.kv.Set(ctx, userKey, string(raw), 0); err != nil {
			m.logger.Warn("persist user profile failed", zap.Error(err))
		}
	}

	m.mu.Lock()
	m.loginRedirect = ""
	m.mu.Unlock()

	m.logger.Info("logged in", zap.String("email", email))
	return &auth, nil
}

// Logout tells the backend, then clears credentials and evicts all cached
// server-query state regardless of whether the request succeeded.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.gw.Post(ctx, "/auth/logout", nil, nil)
	m.clearCredentials(ctx)
	m.cache.Clear(ctx)
	if err != nil {
		m.logger.Warn("logout request failed, session cleared anyway", zap.Error(err))
		return err
	}
	m.logger.Info("logged out")
	return nil
}

// Unauthorized implements the gateway hook: stored credentials are cleared
// and the rejected path is recorded so the login surface can return there.
func (m *Manager) Unauthorized(path string) {
	ctx := context.Background()
	m.clearCredentials(ctx)

	m.mu.Lock()
	m.loginRedirect = path
	m.mu.Unlock()

	m.logger.Info("credentials rejected, login required", zap.String("return_path", path))
}

// LoginRedirect returns the path the user should land on after the next
// successful login, if one was recorded.
func (m *Manager) LoginRedirect() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginRedirect, m.loginRedirect != ""
}

func (m *Manager) clearCredentials(ctx context.Context) {
	if err := m.kv.Del(ctx, tokenKey, userKey); err != nil {
		m.logger.Error("clearing credentials failed", zap.Error(err))
	}
}
