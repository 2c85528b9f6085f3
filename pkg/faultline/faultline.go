/*
Package faultline translates raised errors into logged reports and HTTP
responses. A Handler is built once at startup from an immutable Config
and exposes two operations per handling episode: Report, which emits a
single structured log entry at the severity resolved for the error, and
Render, which rewrites the error through the configured transformer
chain, selects a displayer via the configured filters and produces the
final response.

Both operations share correlation IDs keyed on the error instance, so
the identifier a client sees can be matched to the log line it was
reported with.
*/
package faultline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"faultline.dev/pkg/faultline/logging"
	"faultline.dev/pkg/faultline/metrics"
)

const (
	metricReported = "faultline_errors_reported"
	metricRendered = "faultline_errors_rendered"

	correlationHeader = "X-Correlation-ID"
)

var errUnknown = errors.New("unknown error")

// Handler is the error handling pipeline. It is safe for concurrent use:
// its configuration is read-only and the identifier cache is internally
// synchronized.
type Handler struct {
	cfg     Config
	logger  logging.Logger
	ids     *identifierService
	metrics metrics.Manager
}

// New builds a Handler from cfg. The configuration is treated as
// read-only from this point on.
func New(cfg Config, logger logging.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
		ids:    newIdentifierService(),
	}
}

// UseMetrics registers the pipeline counters on m and enables metric
// emission for subsequent Report and Render calls.
func (h *Handler) UseMetrics(m metrics.Manager) {
	m.NewCounter(metricReported, "Number of errors reported, labeled by severity")
	m.NewCounter(metricRendered, "Number of errors rendered, labeled by status code")

	h.metrics = m
}

// Identify returns the correlation ID for err. Repeated calls with the
// same error instance within one handling episode return the same ID.
func (h *Handler) Identify(err error) string {
	if err == nil {
		err = errUnknown
	}

	return h.ids.identify(err)
}

// reportLog is the structured payload of a report log entry.
type reportLog struct {
	Error          string            `json:"error"`
	Identification map[string]string `json:"identification"`
}

func (rl *reportLog) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "\u001B[38;5;8m%s\u001B[0m %s\n", rl.Identification["id"], rl.Error)
}

// Report emits exactly one log entry for err at its resolved severity,
// tagged with the correlation ID. Errors matching the DoNotReport list
// are suppressed and produce no log entry. Report never fails.
func (h *Handler) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	for _, skip := range h.cfg.DoNotReport {
		if skip != nil && skip(err) {
			return
		}
	}

	level := resolveLevel(err, h.cfg.Levels)
	id := h.ids.identify(err)

	args := []any{&reportLog{
		Error:          err.Error(),
		Identification: map[string]string{"id": id},
	}}

	if span := trace.SpanContextFromContext(ctx); span.HasTraceID() {
		args = append(args, map[string]any{"__trace_id__": span.TraceID().String()})
	}

	logging.Log(h.logger, level, args...)

	if h.metrics != nil {
		h.metrics.IncrementCounter(ctx, metricReported, "level", level.String())
	}
}

// Render produces the response for err. The correlation ID is computed
// against the original error before transformation, so it stays stable
// even when the displayed error type changes. Render is total: any
// input, including a nil request or an error without HTTP semantics,
// yields a deterministic response.
func (h *Handler) Render(r *http.Request, err error) *Response {
	if err == nil {
		err = errUnknown
	}

	id := h.ids.identify(err)
	defer h.ids.release(err)

	transformed := applyTransformers(err, h.cfg.Transformers)

	status, header := statusFromError(transformed)

	displayer := selectDisplayer(transformed, r, h.cfg.Displayers, h.cfg.Filters, h.defaultDisplayer())

	resp := displayer.Display(transformed, id, status, header)
	if resp == nil {
		resp = &Response{
			StatusCode: status,
			Header:     header,
			Body:       []byte(http.StatusText(status)),
		}
	}

	if resp.Header == nil {
		resp.Header = http.Header{}
	}

	if resp.Header.Get(correlationHeader) == "" {
		resp.Header.Set(correlationHeader, id)
	}

	if h.metrics != nil {
		ctx := context.Background()
		if r != nil {
			ctx = r.Context()
		}

		h.metrics.IncrementCounter(ctx, metricRendered, "status", fmt.Sprint(resp.StatusCode))
	}

	return resp
}

func (h *Handler) defaultDisplayer() Displayer {
	if h.cfg.Default != nil {
		return h.cfg.Default
	}

	return plainDisplayer{}
}

// plainDisplayer is the hard fallback when no default displayer is
// configured. It renders the status text only.
type plainDisplayer struct{}

func (plainDisplayer) Display(_ error, id string, status int, header http.Header) *Response {
	if header == nil {
		header = http.Header{}
	}

	header.Set("Content-Type", "text/plain; charset=utf-8")

	body := fmt.Sprintf("%d %s (error id: %s)\n", status, http.StatusText(status), id)

	return &Response{StatusCode: status, Header: header, Body: []byte(body)}
}

func (plainDisplayer) CanDisplay(error, *http.Request) bool {
	return true
}

func (plainDisplayer) ContentType() string {
	return "text/plain"
}
