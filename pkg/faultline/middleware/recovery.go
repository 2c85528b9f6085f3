// Package middleware connects the error handling pipeline to an HTTP
// server: it traps errors and panics escaping request handlers and runs
// them through report and render.
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"faultline.dev/pkg/faultline"
)

// Recovery returns a middleware that recovers panics from the wrapped
// handler and turns them into reported, rendered responses.
func Recovery(h *faultline.Handler) mux.MiddlewareFunc {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				re := recover()
				if re == nil {
					return
				}

				err := panicError(re)

				h.Report(r.Context(), err)
				h.Render(r, err).Write(w)
			}()

			inner.ServeHTTP(w, r)
		})
	}
}

// Handle adapts an error-returning handler func onto net/http. A non-nil
// error is reported and rendered through the pipeline; the handler must
// not have written to w in that case.
func Handle(h *faultline.Handler, fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		h.Report(r.Context(), err)
		h.Render(r, err).Write(w)
	}
}

func panicError(re any) error {
	switch t := re.(type) {
	case error:
		return t
	case string:
		return errors.New(t)
	default:
		return fmt.Errorf("panic: %v", t)
	}
}
