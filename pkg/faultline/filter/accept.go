package filter

import (
	"net/http"
	"strconv"
	"strings"

	"faultline.dev/pkg/faultline"
)

// acceptSpec is one parsed media range from an Accept header.
type acceptSpec struct {
	value   string
	quality float64
}

// Accept keeps displayers whose content type the request accepts,
// honoring quality values and type/* and */* wildcards. A request
// without an Accept header keeps every candidate; an Accept header
// matching none removes all of them, letting the configured default
// displayer take over.
type Accept struct{}

func (Accept) Filter(candidates []faultline.Displayer, _ error, r *http.Request) []faultline.Displayer {
	if r == nil {
		return candidates
	}

	header := r.Header.Get("Accept")
	if header == "" {
		return candidates
	}

	specs := parseAccept(header)
	if len(specs) == 0 {
		return candidates
	}

	kept := make([]faultline.Displayer, 0, len(candidates))

	for _, d := range candidates {
		if accepts(specs, d.ContentType()) {
			kept = append(kept, d)
		}
	}

	return kept
}

func parseAccept(header string) []acceptSpec {
	var specs []acceptSpec

	for _, part := range strings.Split(header, ",") {
		if spec, ok := parseAcceptPart(part); ok {
			specs = append(specs, spec)
		}
	}

	return specs
}

func parseAcceptPart(part string) (acceptSpec, bool) {
	spec := acceptSpec{quality: 1.0}

	fields := strings.Split(part, ";")

	spec.value = strings.ToLower(strings.TrimSpace(fields[0]))
	if spec.value == "" {
		return spec, false
	}

	for _, param := range fields[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || strings.TrimSpace(key) != "q" {
			continue
		}

		if q, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && q >= 0 && q <= 1 {
			spec.quality = q
		}
	}

	return spec, true
}

// accepts reports whether any media range matches contentType with a
// non-zero quality. Ranges match exactly, on type/* or on */*.
func accepts(specs []acceptSpec, contentType string) bool {
	offerType, offerSubtype := splitMediaType(contentType)

	for _, spec := range specs {
		if spec.quality == 0 {
			continue
		}

		specType, specSubtype := splitMediaType(spec.value)

		switch {
		case specType == "*" && specSubtype == "*":
			return true
		case specType == offerType && specSubtype == "*":
			return true
		case specType == offerType && specSubtype == offerSubtype:
			return true
		}
	}

	return false
}

func splitMediaType(mediaType string) (string, string) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if semicolon := strings.IndexByte(mediaType, ';'); semicolon != -1 {
		mediaType = strings.TrimSpace(mediaType[:semicolon])
	}

	mainType, subType, found := strings.Cut(mediaType, "/")
	if !found {
		return mainType, "*"
	}

	return mainType, subType
}
