package formstack_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justin-frenzel/formstack-go/pkg/formstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterceptorRejected = errors.New("rejected")

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := formstack.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *formstack.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *formstack.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := formstack.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *formstack.Request, resp *formstack.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *formstack.Request, resp *formstack.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}
	resp := &formstack.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	chain := formstack.NewInterceptorChain()
	ctx := context.Background()

	chain.AddRequestInterceptor(func(ctx context.Context, req *formstack.Request) error {
		return errInterceptorRejected
	})

	var reached bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *formstack.Request) error {
		reached = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &formstack.Request{Method: "GET", Path: "form.json"})
	require.Error(t, err)
	require.ErrorIs(t, err, errInterceptorRejected)

	// A failing interceptor stops the chain
	assert.False(t, reached)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := formstack.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestAuthenticationInterceptor(t *testing.T) {
	tokenProvider := func(ctx context.Context) (string, error) {
		return "test-token", nil
	}

	interceptor := formstack.AuthenticationInterceptor(tokenProvider)
	ctx := context.Background()
	req := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", req.Headers.Get("Authorization"))
}

func TestMetricsCollector(t *testing.T) {
	collector := formstack.NewMetricsCollector()

	var notifiedEndpoint string

	var notifiedMetrics *formstack.Metrics

	collector.SetOnChange(func(endpoint string, metrics *formstack.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := formstack.MetricsRequestInterceptor(collector)
	responseInterceptor := formstack.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}

	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	resp := &formstack.Response{
		StatusCode: 200,
	}
	err = responseInterceptor(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, "GET form.json", notifiedEndpoint)
	require.NotNil(t, notifiedMetrics)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Positive(t, notifiedMetrics.AverageLatency)

	// A failed request counts as an error
	req2 := &formstack.Request{
		Method: "GET",
		Path:   "form.json",
	}
	resp2 := &formstack.Response{
		StatusCode: 500,
	}
	err = responseInterceptor(ctx, req2, resp2)
	require.NoError(t, err)

	metrics := collector.GetMetrics("GET form.json")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
}

func TestMetricsCollector_UnknownEndpoint(t *testing.T) {
	collector := formstack.NewMetricsCollector()

	assert.Nil(t, collector.GetMetrics("GET submission/1.json"))
}
