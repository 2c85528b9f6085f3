package faultline

import (
	"net/http"
)

// Response is the rendered outcome of one handling episode: status code,
// headers and body, ready to be adapted onto the wire. It is a value
// handed back to the caller; the pipeline does not retain it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Write adapts the response onto a standard http.ResponseWriter.
func (resp *Response) Write(w http.ResponseWriter) {
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	w.WriteHeader(resp.StatusCode)

	_, _ = w.Write(resp.Body)
}
