package stub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/contactform/internal/endpoint"
)

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

const good = `{"name":"Ada Lovelace","email":"ada@example.com","phone":"5550101234","message":"Hello there, friend"}`

func TestStubAcceptsThenRejectsDuplicate(t *testing.T) {
	s := New(nil)
	h := s.Routes()

	rec, out := post(t, h, good)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, msgCreated, out["message"])
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec, out = post(t, h, good)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgDuplicate, out["message"])
	assert.Equal(t, 1, s.Accepted())
}

func TestStubMalformedBody(t *testing.T) {
	rec, out := post(t, New(nil).Routes(), `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, out["detail"])
}

func TestStubValidation(t *testing.T) {
	cases := map[string]string{
		"bad email":     `{"name":"Ada","email":"nope","phone":"5550101234","message":"Hello there, friend"}`,
		"letters phone": `{"name":"Ada","email":"ada@example.com","phone":"55501x1234","message":"Hello there, friend"}`,
		"short message": `{"name":"Ada","email":"ada@example.com","phone":"5550101234","message":"hi"}`,
		"missing name":  `{"email":"ada@example.com","phone":"5550101234","message":"Hello there, friend"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec, out := post(t, New(nil).Routes(), body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, out["error"], "failed")
		})
	}
}

func TestStubWithEndpointClient(t *testing.T) {
	ts := httptest.NewServer(New(nil).Routes())
	defer ts.Close()

	c := endpoint.New(ts.URL+Path, time.Second)
	p := endpoint.Payload{Name: "Ada", Email: "ada@example.com", Phone: "5550101234", Message: "Hello there, friend"}

	res, err := c.Send(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, res.OK())

	res, err = c.Send(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, msgDuplicate, res.ErrorMessage())
}

func TestStubMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	New(nil).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Path, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
