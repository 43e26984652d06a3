// internal/endpoint/response.go
//
// Contact endpoint – response interpretation helpers.
//
// Context
//   Success is decided by status alone.  A 2xx body may be empty, HTML, or
//   malformed JSON and is still a success.  For failures the endpoint may
//   send a JSON object whose "message", "error", or "detail" key (checked in
//   that order) holds text meant for the user.  When no such text exists we
//   fall back to the status code, or to a short snippet of a non-JSON body.
//
//------------------------------------------------------------------------------

package endpoint

import (
	"encoding/json"
	"fmt"
	"strings"
)

const snippetLen = 100

// Response is what came back from a completed request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode <= 299
}

// ErrorMessage returns the user-facing text for a failed response.
func (r *Response) ErrorMessage() string {
	fallback := fmt.Sprintf("Something went wrong. Please try again. (Status: %d)", r.StatusCode)

	var doc any
	if err := json.Unmarshal(r.Body, &doc); err != nil {
		if len(r.Body) > 0 {
			return "Server error: " + snippet(string(r.Body))
		}
		return fallback
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return fallback
	}
	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// snippet keeps the first snippetLen characters of s.
func snippet(s string) string {
	n := 0
	for i := range s {
		if n == snippetLen {
			return s[:i]
		}
		n++
	}
	return s
}

// BodyPreview is a log-friendly, single-line excerpt of the body.
func (r *Response) BodyPreview() string {
	return strings.Join(strings.Fields(snippet(string(r.Body))), " ")
}
