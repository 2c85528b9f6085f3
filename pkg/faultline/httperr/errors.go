// Package httperr defines error types that carry their own HTTP response
// semantics, used by the rendering pipeline to derive status codes and
// headers from a raised error.
package httperr

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// StatusCoder is implemented by errors that carry an intrinsic HTTP
// status code. The pipeline treats such errors as intentional and safe
// to describe to clients.
type StatusCoder interface {
	StatusCode() int
	Error() string
}

// HeaderCarrier is implemented by errors that require response headers
// to be set alongside their status, e.g. Retry-After or Allow.
type HeaderCarrier interface {
	ResponseHeaders() http.Header
}

// ErrorNotFound represents an error for when a requested resource does not exist.
type ErrorNotFound struct {
	Name  string
	Value string
}

func (e ErrorNotFound) Error() string {
	if e.Name == "" {
		return "requested resource not found"
	}

	// For ex: "no entity found with id: 2"
	return fmt.Sprintf("no %s found with value: %s", e.Name, e.Value)
}

func (ErrorNotFound) StatusCode() int {
	return http.StatusNotFound
}

// ErrorGone represents an error for a resource that existed but was permanently removed.
type ErrorGone struct {
	Reason string
}

func (e ErrorGone) Error() string {
	if e.Reason == "" {
		return "requested resource is no longer available"
	}

	return e.Reason
}

func (ErrorGone) StatusCode() int {
	return http.StatusGone
}

// ErrorBadRequest represents an error for a request the server refuses to process.
type ErrorBadRequest struct {
	Reason string
}

func (e ErrorBadRequest) Error() string {
	if e.Reason == "" {
		return "request could not be processed"
	}

	return e.Reason
}

func (ErrorBadRequest) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorForbidden represents an error for a request the caller is not allowed to make.
type ErrorForbidden struct{}

func (ErrorForbidden) Error() string {
	return "access to the requested resource is forbidden"
}

func (ErrorForbidden) StatusCode() int {
	return http.StatusForbidden
}

// ErrorUnauthorized represents an error for a request missing valid credentials.
// Scheme is advertised in the WWW-Authenticate header, defaulting to Basic.
type ErrorUnauthorized struct {
	Scheme string
}

func (ErrorUnauthorized) Error() string {
	return "authentication required"
}

func (ErrorUnauthorized) StatusCode() int {
	return http.StatusUnauthorized
}

func (e ErrorUnauthorized) ResponseHeaders() http.Header {
	scheme := e.Scheme
	if scheme == "" {
		scheme = "Basic"
	}

	h := http.Header{}
	h.Set("WWW-Authenticate", scheme)

	return h
}

// ErrorMethodNotAllowed represents an error for an HTTP method the route does not support.
type ErrorMethodNotAllowed struct {
	Allowed []string
}

func (e ErrorMethodNotAllowed) Error() string {
	return fmt.Sprintf("method not allowed, allowed methods: %s", strings.Join(e.Allowed, ", "))
}

func (ErrorMethodNotAllowed) StatusCode() int {
	return http.StatusMethodNotAllowed
}

func (e ErrorMethodNotAllowed) ResponseHeaders() http.Header {
	h := http.Header{}
	if len(e.Allowed) > 0 {
		h.Set("Allow", strings.Join(e.Allowed, ", "))
	}

	return h
}

// ErrorTooManyRequests represents an error for a rate limited request.
type ErrorTooManyRequests struct {
	RetryAfter time.Duration
}

func (ErrorTooManyRequests) Error() string {
	return "rate limit exceeded"
}

func (ErrorTooManyRequests) StatusCode() int {
	return http.StatusTooManyRequests
}

func (e ErrorTooManyRequests) ResponseHeaders() http.Header {
	h := http.Header{}
	if e.RetryAfter > 0 {
		h.Set("Retry-After", strconv.Itoa(int(e.RetryAfter.Seconds())))
	}

	return h
}

// ErrorServiceUnavailable represents an error for a temporarily unavailable service.
type ErrorServiceUnavailable struct {
	RetryAfter time.Duration
}

func (ErrorServiceUnavailable) Error() string {
	return "service temporarily unavailable"
}

func (ErrorServiceUnavailable) StatusCode() int {
	return http.StatusServiceUnavailable
}

func (e ErrorServiceUnavailable) ResponseHeaders() http.Header {
	h := http.Header{}
	if e.RetryAfter > 0 {
		h.Set("Retry-After", strconv.Itoa(int(e.RetryAfter.Seconds())))
	}

	return h
}

// ErrorTokenMismatch represents a session token mismatch, typically an
// expired CSRF token. It carries no intrinsic status; the bundled
// transformer normalizes it into an ErrorBadRequest before display.
type ErrorTokenMismatch struct{}

func (ErrorTokenMismatch) Error() string {
	return "session token mismatch"
}
