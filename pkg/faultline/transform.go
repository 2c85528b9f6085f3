package faultline

import (
	"errors"

	"faultline.dev/pkg/faultline/httperr"
)

// Transformer rewrites one error into another before display, e.g. to
// normalize a framework-specific error into one carrying HTTP semantics.
// Returning the input unchanged is the no-op.
type Transformer interface {
	Transform(err error) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(error) error

func (f TransformerFunc) Transform(err error) error {
	return f(err)
}

// applyTransformers folds err through the chain in configured order. A
// panicking transformer is a programming defect in the extension and is
// left to propagate.
func applyTransformers(err error, chain []Transformer) error {
	for _, t := range chain {
		err = t.Transform(err)
	}

	return err
}

// NormalizeTokenMismatch maps a session token mismatch onto a bad
// request so clients get a 400 instead of an opaque 500.
func NormalizeTokenMismatch() Transformer {
	return TransformerFunc(func(err error) error {
		var mismatch httperr.ErrorTokenMismatch
		if errors.As(err, &mismatch) {
			return httperr.ErrorBadRequest{Reason: "the page expired, please retry the request"}
		}

		return err
	})
}
