// Package client implements the formstack.Client interface.
package client

import (
	"strconv"
	"strings"

	"github.com/justin-frenzel/formstack-go/internal/auth"
	"github.com/justin-frenzel/formstack-go/internal/constants"
	internalhttp "github.com/justin-frenzel/formstack-go/internal/http"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// Client implements the formstack.Client interface.
type Client struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       formstack.Logger

	// Resource clients
	forms       formstack.FormsClient
	fields      formstack.FieldsClient
	submissions formstack.SubmissionsClient
}

// New creates a new Formstack API client from a validated configuration.
// Credential and nil-config validation happens in pkg/fsclient; this
// constructor applies the endpoint defaults and wires the HTTP layer.
func New(config *formstack.Config) (*Client, error) {
	if config == nil {
		return nil, formstack.ErrConfigRequired
	}

	tokenManager := createTokenManager(config)
	if tokenManager == nil {
		return nil, formstack.ErrAccessTokenRequired
	}

	baseURL := buildBaseURL(config)
	httpClient := internalhttp.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager creates the appropriate token manager for the
// configured credentials. A static access token takes precedence over a
// token source.
func createTokenManager(config *formstack.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.TokenSource != nil {
		return auth.NewTokenSourceManager(config.TokenSource)
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *formstack.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := formstack.NewInterceptorChain()
		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		httpOpts = append(httpOpts, internalhttp.WithInterceptors(chain))
	}

	return httpOpts
}

// buildBaseURL assembles scheme://host[:port]/basePath from the configured
// endpoint fields, filling in the documented defaults.
func buildBaseURL(config *formstack.Config) string {
	scheme := constants.DefaultScheme

	host := config.Host
	if host == "" {
		host = constants.DefaultHost
	}

	switch {
	case strings.HasPrefix(host, "http://"):
		scheme = "http"
		host = strings.TrimPrefix(host, "http://")
	case strings.HasPrefix(host, "https://"):
		scheme = "https"
		host = strings.TrimPrefix(host, "https://")
	}

	host = strings.TrimSuffix(host, "/")

	if config.Port > 0 && !strings.Contains(host, ":") && !isDefaultPort(scheme, config.Port) {
		host = host + ":" + strconv.Itoa(config.Port)
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = constants.DefaultBasePath
	}

	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	return scheme + "://" + host + strings.TrimSuffix(basePath, "/")
}

// isDefaultPort reports whether port is implied by the scheme.
func isDefaultPort(scheme string, port int) bool {
	switch scheme {
	case "https":
		return port == constants.DefaultPort
	case "http":
		return port == 80
	}

	return false
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.forms = NewFormsClient(c.httpClient)
	c.fields = NewFieldsClient(c.httpClient)
	c.submissions = NewSubmissionsClient(c.httpClient)
}

// Forms implements formstack.Client.Forms.
func (c *Client) Forms() formstack.FormsClient {
	return c.forms
}

// Fields implements formstack.Client.Fields.
func (c *Client) Fields() formstack.FieldsClient {
	return c.fields
}

// Submissions implements formstack.Client.Submissions.
func (c *Client) Submissions() formstack.SubmissionsClient {
	return c.submissions
}

// BaseURL returns the resolved endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// loggerAdapter adapts formstack.Logger to the HTTP layer's Logger.
type loggerAdapter struct {
	logger formstack.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
