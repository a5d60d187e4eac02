package mock_http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// JSONResponse builds a response with the given status and JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// HTTPSimpleMatcher matches requests by method and URL.
type HTTPSimpleMatcher struct {
	method string
	url    string
}

func NewHTTPSimpleMatcher(method, url string) *HTTPSimpleMatcher {
	return &HTTPSimpleMatcher{method: method, url: url}
}

func (m *HTTPSimpleMatcher) Matches(x interface{}) bool {
	req, ok := x.(*http.Request)
	if !ok {
		return false
	}
	return req.Method == m.method && req.URL.String() == m.url
}

func (m *HTTPSimpleMatcher) String() string {
	return fmt.Sprintf("HTTP %s request to %s", m.method, m.url)
}
