package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrNoToken       = errors.New("no token available")
	ErrNoTokenSource = errors.New("no token source configured")
)

// Token represents an access token with an optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token is usable: present and not expired. A
// zero expiry means the token never expires.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Before(t.ExpiresAt)
}

// TokenManager supplies bearer tokens to the HTTP layer.
type TokenManager interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)
	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager wraps a fixed access token that never expires.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.token == "" {
		return "", ErrNoToken
	}

	return m.token, nil
}

// SetToken replaces the configured token. The expiry is ignored; static
// tokens do not expire.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
}

// TokenSourceManager adapts an oauth2.TokenSource into a TokenManager. The
// current token is cached and the source is consulted again only when the
// cached token has expired or was never fetched.
type TokenSourceManager struct {
	mutex  sync.RWMutex
	source oauth2.TokenSource
	token  *Token
}

// NewTokenSourceManager creates a token manager backed by source.
func NewTokenSourceManager(source oauth2.TokenSource) *TokenSourceManager {
	return &TokenSourceManager{source: source}
}

// GetToken returns a valid access token, fetching a fresh one from the
// source if necessary.
func (m *TokenSourceManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	token := m.token
	m.mutex.RUnlock()

	if token.Valid() {
		return token.AccessToken, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while we waited for the lock
	if m.token.Valid() {
		return m.token.AccessToken, nil
	}

	if m.source == nil {
		return "", ErrNoTokenSource
	}

	fresh, err := m.source.Token()
	if err != nil {
		return "", fmt.Errorf("fetching token from source: %w", err)
	}

	m.token = &Token{AccessToken: fresh.AccessToken, ExpiresAt: fresh.Expiry}
	if !m.token.Valid() {
		return "", ErrNoToken
	}

	return m.token.AccessToken, nil
}

// SetToken manually sets the cached token, bypassing the source until the
// given expiry passes.
func (m *TokenSourceManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = &Token{AccessToken: token, ExpiresAt: expiresAt}
}
