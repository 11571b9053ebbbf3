package formstack_test

import (
	"fmt"
	"testing"

	"github.com/justin-frenzel/formstack-go/pkg/formstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *formstack.APIError
		expected string
	}{
		{
			name: "with message",
			err: &formstack.APIError{
				StatusCode: 404,
				Message:    "The form was not found",
			},
			expected: "formstack: The form was not found (status 404)",
		},
		{
			name: "without message",
			err: &formstack.APIError{
				StatusCode: 500,
			},
			expected: "formstack: request failed (status 500)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &formstack.ValidationError{
		Field:  "per_page",
		Reason: "must be between 1 and 100",
	}

	assert.Equal(t, "invalid per_page: must be between 1 and 100", err.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &formstack.APIError{StatusCode: 404, Message: "missing"}
	unauthorized := &formstack.APIError{StatusCode: 401, Message: "bad token"}
	validation := &formstack.ValidationError{Field: "form id", Reason: "must be positive"}

	assert.True(t, formstack.IsAPIError(notFound))
	assert.True(t, formstack.IsNotFound(notFound))
	assert.False(t, formstack.IsUnauthorized(notFound))

	assert.True(t, formstack.IsUnauthorized(unauthorized))
	assert.False(t, formstack.IsNotFound(unauthorized))

	assert.True(t, formstack.IsValidation(validation))
	assert.False(t, formstack.IsAPIError(validation))
	assert.False(t, formstack.IsValidation(notFound))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing forms: %w", &formstack.APIError{StatusCode: 401})

	assert.True(t, formstack.IsAPIError(wrapped))
	assert.True(t, formstack.IsUnauthorized(wrapped))
	assert.False(t, formstack.IsValidation(wrapped))
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestNewAPIErrorFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		statusCode      int
		body            string
		expectedStatus  string
		expectedMessage string
	}{
		{
			name:            "payload error marker with error text",
			statusCode:      200,
			body:            `{"status":"error","error":"A valid form id was not supplied"}`,
			expectedStatus:  "error",
			expectedMessage: "A valid form id was not supplied",
		},
		{
			name:            "payload error marker with message text",
			statusCode:      200,
			body:            `{"status":"error","message":"x"}`,
			expectedStatus:  "error",
			expectedMessage: "x",
		},
		{
			name:            "error field preferred over message",
			statusCode:      400,
			body:            `{"error":"first","message":"second"}`,
			expectedMessage: "first",
		},
		{
			name:       "non-json body",
			statusCode: 502,
			body:       "Bad Gateway",
		},
		{
			name:       "array body",
			statusCode: 500,
			body:       `[{"oops":true}]`,
		},
		{
			name:       "empty body",
			statusCode: 503,
			body:       "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := formstack.NewAPIErrorFromResponse(tt.statusCode, []byte(tt.body))
			require.NotNil(t, apiErr)

			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.expectedStatus, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Equal(t, tt.body, string(apiErr.Raw))
		})
	}
}
