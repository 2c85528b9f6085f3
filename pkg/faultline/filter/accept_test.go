package filter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"faultline.dev/pkg/faultline"
)

type stubDisplayer struct {
	contentType string
	eligible    bool
}

func (s *stubDisplayer) Display(_ error, _ string, status int, header http.Header) *faultline.Response {
	return &faultline.Response{StatusCode: status, Header: header}
}

func (s *stubDisplayer) CanDisplay(error, *http.Request) bool {
	return s.eligible
}

func (s *stubDisplayer) ContentType() string {
	return s.contentType
}

func requestAccepting(accept string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}

	return r
}

func TestAccept_Filter(t *testing.T) {
	jsonDisp := &stubDisplayer{contentType: "application/json", eligible: true}
	htmlDisp := &stubDisplayer{contentType: "text/html", eligible: true}
	textDisp := &stubDisplayer{contentType: "text/plain", eligible: true}
	candidates := []faultline.Displayer{jsonDisp, htmlDisp, textDisp}

	tests := []struct {
		desc     string
		accept   string
		expected []faultline.Displayer
	}{
		{"no accept header keeps all", "", candidates},
		{"exact match", "application/json", []faultline.Displayer{jsonDisp}},
		{"subtype wildcard", "text/*", []faultline.Displayer{htmlDisp, textDisp}},
		{"full wildcard keeps all", "*/*", candidates},
		{"multiple ranges preserve candidate order", "text/html, application/json", []faultline.Displayer{jsonDisp, htmlDisp}},
		{"zero quality excludes", "text/html;q=0, application/json", []faultline.Displayer{jsonDisp}},
		{"unsupported type removes all", "application/msgpack", []faultline.Displayer{}},
		{"parameters are ignored for matching", "application/json;version=1", []faultline.Displayer{jsonDisp}},
	}

	for i, tc := range tests {
		got := Accept{}.Filter(candidates, errors.New("boom"), requestAccepting(tc.accept))

		assert.Equal(t, tc.expected, got, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestAccept_NilRequest(t *testing.T) {
	candidates := []faultline.Displayer{&stubDisplayer{contentType: "text/html"}}

	got := Accept{}.Filter(candidates, errors.New("boom"), nil)

	assert.Equal(t, candidates, got)
}

func TestAccept_NeverAddsCandidates(t *testing.T) {
	candidates := []faultline.Displayer{
		&stubDisplayer{contentType: "application/json"},
		&stubDisplayer{contentType: "text/html"},
	}

	got := Accept{}.Filter(candidates, errors.New("boom"), requestAccepting("*/*"))

	assert.LessOrEqual(t, len(got), len(candidates))

	for _, d := range got {
		assert.Contains(t, candidates, d)
	}
}

func TestEligible_Filter(t *testing.T) {
	able := &stubDisplayer{contentType: "text/html", eligible: true}
	unable := &stubDisplayer{contentType: "application/json", eligible: false}

	got := Eligible{}.Filter([]faultline.Displayer{unable, able}, errors.New("boom"), requestAccepting(""))

	assert.Equal(t, []faultline.Displayer{able}, got)
}

func TestRegister_ResolvesBundledFilters(t *testing.T) {
	reg := faultline.NewRegistry()
	Register(reg)

	for i, name := range []string{"accept", "eligible"} {
		f, err := reg.Filter(name, nil)

		assert.NoError(t, err, "TEST[%d], Failed.\n%s", i, name)
		assert.NotNil(t, f, "TEST[%d], Failed.\n%s", i, name)
	}
}
