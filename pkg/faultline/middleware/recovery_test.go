package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"faultline.dev/pkg/faultline"
	"faultline.dev/pkg/faultline/httperr"
	"faultline.dev/pkg/faultline/logging"
)

func TestRecovery_PanickingHandler(t *testing.T) {
	out := &bytes.Buffer{}
	h := faultline.New(faultline.Config{}, logging.NewMockLogger(out))

	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recovery(h)(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
	assert.NotContains(t, w.Body.String(), "boom")

	logs := strings.TrimSpace(out.String())

	assert.Contains(t, logs, "boom")
	assert.Len(t, strings.Split(logs, "\n"), 1, "a panic must produce exactly one report log line")
}

func TestRecovery_HealthyHandlerUntouched(t *testing.T) {
	out := &bytes.Buffer{}
	h := faultline.New(faultline.Config{}, logging.NewMockLogger(out))

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	Recovery(h)(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, out.String())
}

func TestRecovery_PanicValueKinds(t *testing.T) {
	tests := []struct {
		desc     string
		value    any
		expected string
	}{
		{"error value", httperr.ErrorGone{}, "requested resource is no longer available"},
		{"string value", "wires crossed", "wires crossed"},
		{"arbitrary value", 42, "panic: 42"},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, panicError(tc.value).Error(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestHandle_ErrorReturningHandler(t *testing.T) {
	out := &bytes.Buffer{}
	h := faultline.New(faultline.Config{}, logging.NewMockLogger(out))

	handler := Handle(h, func(http.ResponseWriter, *http.Request) error {
		return httperr.ErrorNotFound{Name: "order", Value: "7"}
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/7", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
	assert.Contains(t, out.String(), "no order found with value: 7")
}

func TestHandle_NilError(t *testing.T) {
	out := &bytes.Buffer{}
	h := faultline.New(faultline.Config{}, logging.NewMockLogger(out))

	handler := Handle(h, func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusAccepted)

		return nil
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, out.String())
}
