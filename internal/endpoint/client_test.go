// internal/endpoint/client_test.go
//
// Unit-tests for the outbound client, response helpers, and failure
// classification.
//
// Run: go test ./internal/endpoint -v

package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestSend_WireFormat(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Errorf("Accept = %q", acc)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Errorf("body not JSON: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	want := Payload{Name: "Ada", Email: "ada@example.com", Phone: "5550101234", Message: "Hello there!"}
	res, err := New(srv.URL, time.Second).Send(context.Background(), want)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !res.OK() || res.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", res.StatusCode)
	}
	if string(res.Body) != `{"id":7}` {
		t.Fatalf("body = %q", res.Body)
	}
	if got != want {
		t.Fatalf("server saw %+v, want %+v", got, want)
	}
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 20*time.Millisecond).Send(context.Background(), Payload{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if f := Classify(err); f != FailureTimeout {
		t.Fatalf("Classify = %s, want timeout", f)
	}
}

func TestSend_UntrustedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Send(context.Background(), Payload{})
	if err == nil {
		t.Fatal("expected certificate error")
	}
	if f := Classify(err); f != FailureBlocked {
		t.Fatalf("Classify = %s, want blocked (%v)", f, err)
	}
}

func TestSend_WithHTTPClient(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	res, err := New(srv.URL, 0, WithHTTPClient(srv.Client())).Send(context.Background(), Payload{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !res.OK() {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestClassify(t *testing.T) {
	dns := &url.Error{Op: "Post", URL: DefaultURL, Err: &net.OpError{
		Op: "dial", Net: "tcp",
		Err: &net.DNSError{Err: "no such host", Name: "vernanbackend.invalid"},
	}}
	refused := &url.Error{Op: "Post", URL: DefaultURL, Err: &net.OpError{
		Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused"),
	}}

	cases := []struct {
		name string
		err  error
		want Failure
	}{
		{"nil", nil, FailureUnexpected},
		{"deadline", context.DeadlineExceeded, FailureTimeout},
		{"wrapped deadline", &url.Error{Op: "Post", URL: DefaultURL, Err: context.DeadlineExceeded}, FailureTimeout},
		{"dns", dns, FailureOffline},
		{"refused", refused, FailureUnreachable},
		{"cancelled", context.Canceled, FailureUnexpected},
		{"other", errors.New("x"), FailureUnexpected},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.want {
			t.Errorf("%s: Classify = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestFailureMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range []Failure{FailureUnexpected, FailureOffline, FailureUnreachable, FailureTimeout, FailureBlocked} {
		msg := f.Message()
		if msg == "" || seen[msg] {
			t.Fatalf("%s: empty or duplicate message %q", f, msg)
		}
		seen[msg] = true
	}
}

func TestErrorMessage_Snippet(t *testing.T) {
	body := strings.Repeat("é", 150)
	r := &Response{StatusCode: 502, Body: []byte(body)}

	got := r.ErrorMessage()
	want := "Server error: " + strings.Repeat("é", 100)
	if got != want {
		t.Fatalf("ErrorMessage = %q (len %d), want 100-character snippet", got, len(got))
	}
}

func TestErrorMessage_NonObjectJSON(t *testing.T) {
	r := &Response{StatusCode: 418, Body: []byte(`"teapot"`)}
	if got := r.ErrorMessage(); got != "Something went wrong. Please try again. (Status: 418)" {
		t.Fatalf("ErrorMessage = %q", got)
	}
}

func TestResponseOK(t *testing.T) {
	for code, want := range map[int]bool{199: false, 200: true, 204: true, 299: true, 300: false, 404: false} {
		if got := (&Response{StatusCode: code}).OK(); got != want {
			t.Errorf("OK(%d) = %v, want %v", code, got, want)
		}
	}
	var nilRes *Response
	if nilRes.OK() {
		t.Error("nil response reported OK")
	}
}

func TestSend_CrossOriginRedirect(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("redirect target should not be contacted")
	}))
	defer other.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, other.URL+"/api/contact-us/", http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Send(context.Background(), Payload{})
	if !errors.Is(err, ErrCrossOriginRedirect) {
		t.Fatalf("err = %v, want ErrCrossOriginRedirect", err)
	}
	if got := Classify(err); got != FailureBlocked {
		t.Fatalf("Classify = %v, want blocked", got)
	}
}

func TestSend_SameOriginRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/contact-us/", http.StatusPermanentRedirect)
	})
	mux.HandleFunc("/api/contact-us/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := New(srv.URL+"/old/", time.Second).Send(context.Background(), Payload{Name: "Ada"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", res.StatusCode)
	}
}
