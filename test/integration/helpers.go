//go:build integration

// Package integration holds tests that exercise the client against a live
// Formstack account. They are gated behind the integration build tag and
// skip themselves unless credentials are provided via the environment:
//
//	FORMSTACK_ACCESS_TOKEN  API access token (required)
//	FORMSTACK_TEST_FORM_ID  numeric ID of a form the token can read (optional)
package integration

import (
	"os"
	"strconv"
	"testing"

	"github.com/justin-frenzel/formstack-go/pkg/formstack"
	"github.com/justin-frenzel/formstack-go/pkg/fsclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	AccessToken string
	TestFormID  int64
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	config := &TestConfig{
		AccessToken: os.Getenv("FORMSTACK_ACCESS_TOKEN"),
	}

	if raw := os.Getenv("FORMSTACK_TEST_FORM_ID"); raw != "" {
		formID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			config.TestFormID = formID
		}
	}

	return config
}

// SkipIfMissingConfig skips the test when no credentials are configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.AccessToken == "" {
		t.Skip("FORMSTACK_ACCESS_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingFormID skips the test when no test form is configured.
func (config *TestConfig) SkipIfMissingFormID(t *testing.T) {
	t.Helper()

	if config.TestFormID == 0 {
		t.Skip("FORMSTACK_TEST_FORM_ID not set, skipping integration test")
	}
}

// NewClient builds a live client from the test configuration.
func (config *TestConfig) NewClient(t *testing.T) formstack.Client {
	t.Helper()

	client, err := fsclient.NewWithToken(config.AccessToken)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}
