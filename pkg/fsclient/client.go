package fsclient

import (
	"fmt"

	"golang.org/x/oauth2"

	"github.com/justin-frenzel/formstack-go/internal/client"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// New creates a new Formstack API client from config. The config must carry
// either an access token or an oauth2 token source; every other field has a
// documented default.
func New(config *formstack.Config) (formstack.Client, error) {
	if config == nil {
		return nil, formstack.ErrConfigRequired
	}

	if config.AccessToken == "" && config.TokenSource == nil {
		return nil, formstack.ErrAccessTokenRequired
	}

	fsClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return fsClient, nil
}

// NewWithToken creates a new client for the public API using a static
// access token.
func NewWithToken(accessToken string) (formstack.Client, error) {
	return New(&formstack.Config{
		AccessToken: accessToken,
	})
}

// NewWithTokenSource creates a new client whose bearer tokens come from an
// oauth2 token source; the source is consulted again whenever the cached
// token expires.
func NewWithTokenSource(source oauth2.TokenSource) (formstack.Client, error) {
	return New(&formstack.Config{
		TokenSource: source,
	})
}
