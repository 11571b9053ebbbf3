// Package http implements the request executor for the Formstack API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/justin-frenzel/formstack-go/internal/auth"
	"github.com/justin-frenzel/formstack-go/internal/constants"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one API request. Params, when non-empty, are encoded
// and sent as the request body for every verb, GET included; the Formstack
// API reads listing filters from the body.
type Request struct {
	Method  string
	Path    string
	Params  *formstack.Params
	Headers map[string]string
}

// Response represents the buffered API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against the Formstack API.
type Client struct {
	resty        *resty.Client
	tokenManager auth.TokenManager
	logger       Logger
	interceptors *formstack.InterceptorChain
	userAgent    string
	debug        bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each request. Zero keeps the default behavior of
// waiting indefinitely; callers cancel via context instead.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.resty.SetTimeout(timeout)
	}
}

// WithInterceptors installs the interceptor chain run around every request.
func WithInterceptors(chain *formstack.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new API client. The base URL carries the scheme,
// host, optional port, and base path; request paths are appended to it.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetAllowGetMethodPayload(true).
		SetDoNotParseResponse(true)

	client := &Client{
		resty:        restyClient,
		tokenManager: tokenManager,
		userAgent:    constants.ClientName + "/" + constants.ClientVersion,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single request: one connection, full body buffered, JSON
// payload classified before it is handed back. The error return covers
// transport failures, non-2xx statuses, and 2xx payloads that carry a
// "status":"error" marker; the last two also return the Response so callers
// can inspect the raw payload.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	verb, err := normalizeVerb(req)
	if err != nil {
		return nil, err
	}

	headers, body, err := c.prepareRequest(ctx, req, verb)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":    verb,
			"path":      req.Path,
			"body_size": len(body),
		})
	}

	restyReq := c.resty.R().SetContext(ctx)
	for key, values := range headers {
		for _, value := range values {
			restyReq.SetHeader(key, value)
		}
	}

	if len(body) > 0 {
		restyReq.SetHeader(constants.HeaderContentType, constants.ContentTypeForm)
		restyReq.SetBody(body)
	}

	restyResp, err := restyReq.Execute(verb, req.Path)
	if err != nil {
		c.notifyResponse(ctx, verb, req.Path, headers, body, nil, err)

		return nil, fmt.Errorf("executing request: %w", err)
	}

	respBody, err := drainBody(restyResp)
	if err != nil {
		c.notifyResponse(ctx, verb, req.Path, headers, body, restyResp, err)

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: restyResp.StatusCode(),
		Headers:    restyResp.Header(),
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      verb,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"body_size":   len(respBody),
		})
	}

	return c.classify(ctx, verb, req, headers, body, resp)
}

// normalizeVerb validates the request preconditions and returns the verb in
// upper case. These failures are programmer errors and are reported before
// any network I/O.
func normalizeVerb(req *Request) (string, error) {
	if req.Path == "" {
		return "", formstack.ErrEndpointRequired
	}

	verb := strings.ToUpper(req.Method)
	switch verb {
	case http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete:
		return verb, nil
	default:
		return "", fmt.Errorf("%w: %q", formstack.ErrUnsupportedVerb, req.Method)
	}
}

// prepareRequest resolves the bearer token, assembles headers, encodes the
// parameter body, and runs the request interceptors.
func (c *Client) prepareRequest(ctx context.Context, req *Request, verb string) (http.Header, []byte, error) {
	headers := make(http.Header)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("getting access token: %w", err)
		}

		headers.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	var body []byte
	if !req.Params.Empty() {
		body = []byte(req.Params.Encode())
	}

	if c.interceptors != nil {
		info := &formstack.Request{
			Method:  verb,
			Path:    req.Path,
			Headers: headers,
			Body:    body,
		}

		err := c.interceptors.ExecuteRequestInterceptors(ctx, info)
		if err != nil {
			return nil, nil, err
		}

		headers = info.Headers
		body = info.Body
	}

	return headers, body, nil
}

// classify runs the response interceptors and maps the buffered response
// into a success or a *formstack.APIError.
func (c *Client) classify(ctx context.Context, verb string, req *Request, headers http.Header, body []byte, resp *Response) (*Response, error) {
	var apiErr error

	switch {
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		apiErr = formstack.NewAPIErrorFromResponse(resp.StatusCode, resp.Body)
	case gjson.GetBytes(resp.Body, "status").String() == "error":
		// HTTP succeeded but the payload reports an API-level failure;
		// normalize it into the same error shape as transport failures.
		apiErr = formstack.NewAPIErrorFromResponse(resp.StatusCode, resp.Body)
	}

	if c.interceptors != nil {
		info := &formstack.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      apiErr,
		}

		err := c.interceptors.ExecuteResponseInterceptors(ctx, &formstack.Request{
			Method:  verb,
			Path:    req.Path,
			Headers: headers,
			Body:    body,
		}, info)
		if err != nil {
			return resp, err
		}
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// notifyResponse runs the response interceptors for requests that failed
// before a Response could be built.
func (c *Client) notifyResponse(ctx context.Context, verb, path string, headers http.Header, body []byte, restyResp *resty.Response, cause error) {
	if c.interceptors == nil || cause == nil {
		return
	}

	info := &formstack.Response{Error: cause}
	if restyResp != nil {
		info.StatusCode = restyResp.StatusCode()
		info.Headers = restyResp.Header()
	}

	_ = c.interceptors.ExecuteResponseInterceptors(ctx, &formstack.Request{
		Method:  verb,
		Path:    path,
		Headers: headers,
		Body:    body,
	}, info)
}

// drainBody buffers the full raw response body. The JSON payload is only
// interpreted after the transport has delivered every byte.
func drainBody(resp *resty.Response) ([]byte, error) {
	raw := resp.RawBody()
	if raw == nil {
		return nil, nil
	}

	defer func() {
		_ = raw.Close()
	}()

	body, err := io.ReadAll(raw)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, params *formstack.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Params: params})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, params *formstack.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Params: params})
}

// Put executes a PUT request.
func (c *Client) Put(ctx context.Context, path string, params *formstack.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Params: params})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params *formstack.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Params: params})
}
