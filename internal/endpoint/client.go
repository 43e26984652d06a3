// internal/endpoint/client.go
//
// Contact endpoint – outbound HTTP client.
//
// Context
//   The contact form talks to exactly one remote endpoint: it POSTs a JSON
//   object with four string fields and reads back a status code and an
//   optional body.  This file owns that request.  It does not interpret
//   the response; the form controller decides what a status or body means
//   (see response.go for the helpers it uses).
//
// Workflow
//   •  New builds a Client for one URL with a request timeout.
//   •  Send marshals the Payload, sets JSON Content-Type and Accept headers,
//      performs one POST, and returns the status code and raw body.
//   •  A non-nil error means the request never completed (DNS, dial, TLS,
//      timeout, cancelled context).  Classify maps it to a Failure.
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultURL is the production contact-us endpoint.
	DefaultURL = "https://vernanbackend.ezlab.in/api/contact-us/"

	// DefaultTimeout bounds one submission end to end.
	DefaultTimeout = 15 * time.Second

	maxBody      = 1 << 20 // responses larger than 1 MiB are truncated
	maxRedirects = 10
)

// ErrCrossOriginRedirect is returned when the endpoint redirects to a
// different scheme or host.  The submission is not replayed there.
var ErrCrossOriginRedirect = errors.New("cross-origin redirect refused")

// Payload is the JSON body sent to the endpoint.  Phone carries digits only.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Client posts contact submissions to one URL.  Safe for concurrent use.
type Client struct {
	url  string
	http *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests, proxies).
// Its Timeout is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a Client for url.  timeout <= 0 disables the client-side
// deadline; callers may still bound Send through ctx.
func New(url string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		url:  url,
		http: &http.Client{Timeout: timeout, CheckRedirect: sameOrigin},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// sameOrigin follows redirects only within the first request's scheme and host.
func sameOrigin(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	first := via[0].URL
	if req.URL.Scheme != first.Scheme || req.URL.Host != first.Host {
		return ErrCrossOriginRedirect
	}
	return nil
}

// URL returns the target endpoint.
func (c *Client) URL() string { return c.url }

// Send performs one POST.  A returned *Response may carry any status code;
// a non-nil error means no response was received.
func (c *Client) Send(ctx context.Context, p Payload) (*Response, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err // *url.Error; keep it unwrapped for Classify
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{StatusCode: res.StatusCode, Body: raw}, nil
}
