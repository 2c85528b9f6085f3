package httperr

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		desc       string
		err        StatusCoder
		statusCode int
	}{
		{"not found", ErrorNotFound{}, http.StatusNotFound},
		{"gone", ErrorGone{}, http.StatusGone},
		{"bad request", ErrorBadRequest{}, http.StatusBadRequest},
		{"forbidden", ErrorForbidden{}, http.StatusForbidden},
		{"unauthorized", ErrorUnauthorized{}, http.StatusUnauthorized},
		{"method not allowed", ErrorMethodNotAllowed{}, http.StatusMethodNotAllowed},
		{"too many requests", ErrorTooManyRequests{}, http.StatusTooManyRequests},
		{"service unavailable", ErrorServiceUnavailable{}, http.StatusServiceUnavailable},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.statusCode, tc.err.StatusCode(), "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.NotEmpty(t, tc.err.Error(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		desc     string
		err      error
		expected string
	}{
		{"not found with name", ErrorNotFound{Name: "user", Value: "42"}, "no user found with value: 42"},
		{"not found bare", ErrorNotFound{}, "requested resource not found"},
		{"gone with reason", ErrorGone{Reason: "resource expired"}, "resource expired"},
		{"bad request with reason", ErrorBadRequest{Reason: "malformed payload"}, "malformed payload"},
		{"token mismatch", ErrorTokenMismatch{}, "session token mismatch"},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, tc.err.Error(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestResponseHeaders(t *testing.T) {
	tests := []struct {
		desc   string
		err    HeaderCarrier
		key    string
		value  string
	}{
		{"unauthorized default scheme", ErrorUnauthorized{}, "WWW-Authenticate", "Basic"},
		{"unauthorized bearer", ErrorUnauthorized{Scheme: "Bearer"}, "WWW-Authenticate", "Bearer"},
		{"method not allowed", ErrorMethodNotAllowed{Allowed: []string{"GET", "POST"}}, "Allow", "GET, POST"},
		{"too many requests", ErrorTooManyRequests{RetryAfter: 30 * time.Second}, "Retry-After", "30"},
		{"service unavailable", ErrorServiceUnavailable{RetryAfter: time.Minute}, "Retry-After", "60"},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.value, tc.err.ResponseHeaders().Get(tc.key), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestRetryAfterOmittedWhenZero(t *testing.T) {
	assert.Empty(t, ErrorTooManyRequests{}.ResponseHeaders().Get("Retry-After"))
	assert.Empty(t, ErrorServiceUnavailable{}.ResponseHeaders().Get("Retry-After"))
}
