// Package filter ships the bundled displayer filters: content
// negotiation against the request's Accept header and per-displayer
// eligibility checks. Filters narrow the candidate list only; they
// never reorder it or add to it.
package filter

import (
	"net/http"

	"faultline.dev/pkg/faultline"
)

// Eligible keeps displayers that report themselves able to display the
// error for this request.
type Eligible struct{}

func (Eligible) Filter(candidates []faultline.Displayer, err error, r *http.Request) []faultline.Displayer {
	kept := make([]faultline.Displayer, 0, len(candidates))

	for _, d := range candidates {
		if d.CanDisplay(err, r) {
			kept = append(kept, d)
		}
	}

	return kept
}

// Register installs the bundled filters into the registry under the
// names "accept" and "eligible".
func Register(r *faultline.Registry) {
	r.RegisterFilter("accept", func(map[string]any) (faultline.Filter, error) {
		return Accept{}, nil
	})

	r.RegisterFilter("eligible", func(map[string]any) (faultline.Filter, error) {
		return Eligible{}, nil
	})
}
