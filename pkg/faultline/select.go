package faultline

import (
	"errors"
	"net/http"

	"faultline.dev/pkg/faultline/httperr"
)

// Displayer renders the final response for an error. Implementations are
// content-type specific strategies; the pipeline picks one per episode.
type Displayer interface {
	// Display renders err with its correlation ID, the flattened status
	// code and any headers the error mandates. It must not fail.
	Display(err error, id string, status int, header http.Header) *Response

	// CanDisplay reports whether this displayer is suitable for the
	// given error and request.
	CanDisplay(err error, r *http.Request) bool

	// ContentType is the media type this displayer produces.
	ContentType() string
}

// Filter narrows the displayer candidate list for an error. A filter
// must preserve the relative order of surviving candidates and must not
// introduce candidates absent from its input.
type Filter interface {
	Filter(candidates []Displayer, err error, r *http.Request) []Displayer
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func([]Displayer, error, *http.Request) []Displayer

func (f FilterFunc) Filter(candidates []Displayer, err error, r *http.Request) []Displayer {
	return f(candidates, err, r)
}

// selectDisplayer folds the candidates through each filter in configured
// order and picks the first survivor. Later filters only see what
// earlier filters preserved. The fallback makes selection total:
// rendering never fails for lack of a displayer.
func selectDisplayer(err error, r *http.Request, candidates []Displayer, filters []Filter, fallback Displayer) Displayer {
	for _, f := range filters {
		candidates = f.Filter(candidates, err, r)

		if len(candidates) == 0 {
			break
		}
	}

	if len(candidates) > 0 {
		return candidates[0]
	}

	return fallback
}

// statusFromError flattens the HTTP semantics carried by err into a
// status code and headers. Errors without an intrinsic status render as
// 500 with no extra headers.
func statusFromError(err error) (int, http.Header) {
	header := http.Header{}

	var hc httperr.HeaderCarrier
	if errors.As(err, &hc) {
		for key, values := range hc.ResponseHeaders() {
			for _, v := range values {
				header.Add(key, v)
			}
		}
	}

	var sc httperr.StatusCoder
	if errors.As(err, &sc) {
		if code := sc.StatusCode(); code != 0 {
			return code, header
		}
	}

	return http.StatusInternalServerError, header
}
