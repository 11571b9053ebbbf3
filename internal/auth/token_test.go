package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/justin-frenzel/formstack-go/internal/auth"
)

func tokenValidTestCases() []struct {
	name     string
	token    *auth.Token
	expected bool
} {
	return []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name:     "empty access token",
			token:    &auth.Token{},
			expected: false,
		},
		{
			name:     "token without expiry never expires",
			token:    &auth.Token{AccessToken: "tok"},
			expected: true,
		},
		{
			name: "token with future expiry",
			token: &auth.Token{
				AccessToken: "tok",
				ExpiresAt:   time.Now().Add(time.Hour),
			},
			expected: true,
		},
		{
			name: "expired token",
			token: &auth.Token{
				AccessToken: "tok",
				ExpiresAt:   time.Now().Add(-time.Hour),
			},
			expected: false,
		},
	}
}

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	for _, testCase := range tokenValidTestCases() {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.token.Valid())
		})
	}
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()
	t.Run("returns configured token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("access-token")

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "access-token", token)
	})

	t.Run("empty token is an error", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("")

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("set replaces the token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("old")
		manager.SetToken("new", time.Time{})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})
}

// fakeTokenSource counts how often the source is consulted.
type fakeTokenSource struct {
	token *oauth2.Token
	err   error
	calls int
}

func (s *fakeTokenSource) Token() (*oauth2.Token, error) {
	s.calls++

	return s.token, s.err
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTokenSourceManager(t *testing.T) {
	t.Parallel()
	t.Run("fetches from source", func(t *testing.T) {
		t.Parallel()

		source := &fakeTokenSource{token: &oauth2.Token{
			AccessToken: "source-token",
			Expiry:      time.Now().Add(time.Hour),
		}}
		manager := auth.NewTokenSourceManager(source)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "source-token", token)
		assert.Equal(t, 1, source.calls)
	})

	t.Run("caches until expiry", func(t *testing.T) {
		t.Parallel()

		source := &fakeTokenSource{token: &oauth2.Token{
			AccessToken: "source-token",
			Expiry:      time.Now().Add(time.Hour),
		}}
		manager := auth.NewTokenSourceManager(source)

		_, err := manager.GetToken(context.Background())
		require.NoError(t, err)

		_, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, source.calls)
	})

	t.Run("source failure propagates", func(t *testing.T) {
		t.Parallel()

		source := &fakeTokenSource{err: errors.New("token endpoint unreachable")}
		manager := auth.NewTokenSourceManager(source)

		_, err := manager.GetToken(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching token from source")
	})

	t.Run("nil source is an error", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewTokenSourceManager(nil)

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoTokenSource)
	})

	t.Run("expired source token is an error", func(t *testing.T) {
		t.Parallel()

		source := &fakeTokenSource{token: &oauth2.Token{
			AccessToken: "stale",
			Expiry:      time.Now().Add(-time.Minute),
		}}
		manager := auth.NewTokenSourceManager(source)

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("manually set token bypasses the source", func(t *testing.T) {
		t.Parallel()

		source := &fakeTokenSource{token: &oauth2.Token{
			AccessToken: "source-token",
			Expiry:      time.Now().Add(time.Hour),
		}}
		manager := auth.NewTokenSourceManager(source)
		manager.SetToken("manual", time.Now().Add(time.Hour))

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "manual", token)
		assert.Equal(t, 0, source.calls)
	})
}
