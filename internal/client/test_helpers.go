package client

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	internalhttp "github.com/justin-frenzel/formstack-go/internal/http"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// newTestHTTPClient creates an executor pointed at a test server, without
// authentication.
func newTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, nil)
}

// asAPIError unwraps err into the API failure it carries, if any.
func asAPIError(err error) (*formstack.APIError, bool) {
	apiErr := &formstack.APIError{}
	ok := errors.As(err, &apiErr)

	return apiErr, ok
}

// decodeRequestBody parses the encoded parameter body of a test request
// back into a key/value map for assertions.
func decodeRequestBody(t *testing.T, request *http.Request) map[string]string {
	t.Helper()

	raw, err := io.ReadAll(request.Body)
	if err != nil {
		t.Fatalf("reading request body: %v", err)
	}

	values := make(map[string]string)

	if len(raw) == 0 {
		return values
	}

	for _, segment := range strings.Split(string(raw), "&") {
		key, value, _ := strings.Cut(segment, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			t.Fatalf("unescaping key %q: %v", key, err)
		}

		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			t.Fatalf("unescaping value %q: %v", value, err)
		}

		values[decodedKey] = decodedValue
	}

	return values
}
