// Package display ships the bundled response renderers the pipeline
// selects among: a JSON error document, an HTML error page and a plain
// text fallback. All three hide internal error messages: only errors
// that opted into HTTP semantics expose their text to clients.
package display

import (
	"errors"
	"net/http"

	"github.com/mitchellh/mapstructure"

	"faultline.dev/pkg/faultline"
	"faultline.dev/pkg/faultline/httperr"
)

// detailFor returns the client-visible description for err. Errors
// carrying an intrinsic status are intentional and safe to describe;
// anything else renders as the bare status text so internal messages
// never leak.
func detailFor(err error, status int) string {
	var sc httperr.StatusCoder
	if errors.As(err, &sc) {
		return sc.Error()
	}

	return http.StatusText(status)
}

func withContentType(header http.Header, contentType string) http.Header {
	h := http.Header{}

	for key, values := range header {
		for _, v := range values {
			h.Add(key, v)
		}
	}

	h.Set("Content-Type", contentType)

	return h
}

// Register installs the bundled displayers into the registry under the
// names "json", "html" and "text".
func Register(r *faultline.Registry) {
	r.RegisterDisplayer("json", func(options map[string]any) (faultline.Displayer, error) {
		var opts jsonOptions
		if err := decode(options, &opts); err != nil {
			return nil, err
		}

		return &JSON{Pretty: opts.Pretty}, nil
	})

	r.RegisterDisplayer("html", func(options map[string]any) (faultline.Displayer, error) {
		var opts htmlOptions
		if err := decode(options, &opts); err != nil {
			return nil, err
		}

		return NewHTML(opts.Template)
	})

	r.RegisterDisplayer("text", func(map[string]any) (faultline.Displayer, error) {
		return &Text{}, nil
	})
}

func decode(options map[string]any, target any) error {
	if len(options) == 0 {
		return nil
	}

	return mapstructure.Decode(options, target)
}
