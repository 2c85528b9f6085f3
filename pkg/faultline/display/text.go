package display

import (
	"fmt"
	"net/http"

	"faultline.dev/pkg/faultline"
)

const contentTypeText = "text/plain"

// Text renders a single plain text line. It is the least specific
// displayer and is eligible for any request.
type Text struct{}

func (*Text) Display(err error, id string, status int, header http.Header) *faultline.Response {
	body := fmt.Sprintf("%d %s: %s (error id: %s)\n", status, http.StatusText(status), detailFor(err, status), id)

	return &faultline.Response{
		StatusCode: status,
		Header:     withContentType(header, contentTypeText+"; charset=utf-8"),
		Body:       []byte(body),
	}
}

func (*Text) CanDisplay(error, *http.Request) bool {
	return true
}

func (*Text) ContentType() string {
	return contentTypeText
}
