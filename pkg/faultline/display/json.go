package display

import (
	"encoding/json"
	"net/http"

	"faultline.dev/pkg/faultline"
)

const contentTypeJSON = "application/json"

type jsonOptions struct {
	Pretty bool `mapstructure:"pretty"`
}

// JSON renders the error document consumed by API clients:
//
//	{"errors":[{"id":"<correlation id>","status":410,"title":"Gone","detail":"..."}]}
type JSON struct {
	Pretty bool
}

type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

type errorObject struct {
	ID     string `json:"id"`
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (d *JSON) Display(err error, id string, status int, header http.Header) *faultline.Response {
	doc := errorDocument{
		Errors: []errorObject{{
			ID:     id,
			Status: status,
			Title:  http.StatusText(status),
			Detail: detailFor(err, status),
		}},
	}

	var (
		body    []byte
		marshal error
	)

	if d.Pretty {
		body, marshal = json.MarshalIndent(doc, "", "  ")
	} else {
		body, marshal = json.Marshal(doc)
	}

	if marshal != nil {
		body = []byte(`{"errors":[{"status":500,"title":"Internal Server Error"}]}`)
		status = http.StatusInternalServerError
	}

	return &faultline.Response{
		StatusCode: status,
		Header:     withContentType(header, contentTypeJSON),
		Body:       body,
	}
}

func (*JSON) CanDisplay(error, *http.Request) bool {
	return true
}

func (*JSON) ContentType() string {
	return contentTypeJSON
}
