// internal/stub/stub.go
//
// Local stand-in for the contact-us endpoint.
//
// Context
//   `contactform --stub` and the end-to-end tests need an endpoint that
//   answers the way the production one does without touching the network.
//   This package serves `POST /api/contact-us/` from memory.
//
// Workflow
//   •  Decode the JSON body.  Malformed → 400 {"detail": …}.
//   •  Validate with struct tags.  Rejected → 400 {"error": …}.
//   •  Same email and message already accepted → 409 {"message": "Duplicate entry"}.
//   •  Otherwise remember the pair and answer 201.
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package stub

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yanizio/contactform/internal/cache"
	"github.com/yanizio/contactform/internal/middleware"
)

// Path is where the stub mounts its only route.
const Path = "/api/contact-us/"

const (
	msgCreated   = "Contact request submitted successfully"
	msgDuplicate = "Duplicate entry"
	maxRequest   = 64 << 10

	// rememberLimit caps how many accepted submissions are kept for
	// duplicate detection.  The oldest are forgotten first.
	rememberLimit = 10000
)

// submission mirrors endpoint.Payload with the server-side rules.
type submission struct {
	Name    string `json:"name"    validate:"required,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,numeric,min=10,max=15"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// Server holds accepted submissions.  Safe for concurrent use.
type Server struct {
	log      *zap.SugaredLogger
	validate *validator.Validate

	mu   sync.Mutex
	seen *cache.LRU[string]
}

// New returns an empty Server.  log may be nil.
func New(log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		log:      log,
		validate: validator.New(),
		seen:     cache.New[string](rememberLimit),
	}
}

// Accepted reports how many distinct submissions are remembered.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen.Len()
}

// Routes mounts the endpoint behind request IDs, panic recovery, and
// security headers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Post(Path, s.handleContact)
	return r
}

/*──────────────────────────── handler ─────────────────────────────────────*/

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	reqID := chimw.GetReqID(r.Context())

	var sub submission
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequest))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		s.log.Warnw("stub malformed body", "request_id", reqID, "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed JSON body."})
		return
	}

	if err := s.validate.Struct(sub); err != nil {
		msg := describe(err)
		s.log.Warnw("stub rejected submission", "request_id", reqID, "reason", msg)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	key := strings.ToLower(sub.Email) + "\x00" + sub.Message
	_, domain, _ := strings.Cut(sub.Email, "@")
	s.mu.Lock()
	dup := s.seen.Add(key)
	s.mu.Unlock()

	if dup {
		s.log.Infow("stub duplicate submission", "request_id", reqID, "email_domain", domain)
		writeJSON(w, http.StatusConflict, map[string]string{"message": msgDuplicate})
		return
	}

	s.log.Infow("stub accepted submission", "request_id", reqID, "email_domain", domain)
	writeJSON(w, http.StatusCreated, map[string]string{"message": msgCreated})
}

// describe turns validator output into one sentence naming the first field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid submission."
	}
	fe := verrs[0]
	return fmt.Sprintf("Field %s failed %s validation.", strings.ToLower(fe.Field()), fe.Tag())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
