// internal/form/controller.go
//
// Contact form – controller state and input events.
//
// Context
//   A Controller owns everything that changes while a visitor fills in the
//   form: current values, inline errors, per-field validity, the aggregate
//   "may submit" flag, the focused field, the submission state, and the
//   toast.  Front ends forward UI events (change, focus, blur, submit,
//   dismiss) and read the state back to render.
//
// Workflow
//   •  Each event is one synchronous transition under mu.  After any value
//      changes, recompute derives the aggregate validity from the values
//      alone, so it can never drift from the per-field rules.
//   •  Submission lives in submit.go, the toast timer in notify.go.
//
// Notes
//   •  The controller is safe for concurrent use.  The lock matters because
//      the dismissal timer fires on its own goroutine and Submit waits for
//      the network outside the lock.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/yanizio/contactform/internal/endpoint"
)

// DefaultDismissAfter is how long a toast stays visible.
const DefaultDismissAfter = 4 * time.Second

// Sender delivers a payload to the contact endpoint.  *endpoint.Client
// satisfies it.
type Sender interface {
	Send(ctx context.Context, p endpoint.Payload) (*endpoint.Response, error)
}

// Controller is the contact form's state machine.  Create with
// NewController; the zero value is not usable.
type Controller struct {
	sender       Sender
	clock        clockwork.Clock
	observer     Observer
	log          *zap.SugaredLogger
	dismissAfter time.Duration

	mu         sync.Mutex
	values     Values
	errors     Errors
	fieldValid map[Field]bool
	valid      bool
	state      State
	active     Field
	started    time.Time

	note      Notification
	noteSeq   uint64
	noteTimer clockwork.Timer
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock injects the clock used for toast timers and durations.
func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithObserver attaches lifecycle hooks.  Pass Observers{...} for several.
func WithObserver(o Observer) Option {
	return func(ctl *Controller) { ctl.observer = o }
}

// WithDismissAfter overrides the toast lifetime.
func WithDismissAfter(d time.Duration) Option {
	return func(ctl *Controller) { ctl.dismissAfter = d }
}

// WithLogger sets the logger for controller diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

// NewController returns an idle controller with every field empty.
func NewController(sender Sender, opts ...Option) *Controller {
	c := &Controller{
		sender:       sender,
		clock:        clockwork.NewRealClock(),
		observer:     Observers(nil),
		log:          zap.NewNop().Sugar(),
		dismissAfter: DefaultDismissAfter,
		values:       EmptyValues(),
		errors:       make(Errors),
		fieldValid:   make(map[Field]bool),
	}
	for _, o := range opts {
		o(c)
	}
	if c.dismissAfter <= 0 {
		c.dismissAfter = DefaultDismissAfter
	}
	return c
}

// -----------------------------------------------------------------------------
// Input events
// -----------------------------------------------------------------------------

// Change records a new raw value for f.  Phone input keeps digits only.
// An invalid value gets its message unless it is blank; a blank field shows
// no error while the visitor is still typing.  Unknown fields are ignored.
func (c *Controller) Change(f Field, raw string) {
	if _, ok := ParseField(string(f)); !ok {
		return
	}
	v := raw
	if f == FieldPhone {
		v = DigitsOnly(raw)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[f] = v
	r := Validate(f, v)
	c.fieldValid[f] = r.Valid

	switch {
	case r.Valid:
		delete(c.errors, f)
	case strings.TrimSpace(v) != "":
		c.errors[f] = r.Message
	default:
		delete(c.errors, f)
	}

	c.recompute()
}

// Focus marks f as the active field.  It never validates.
func (c *Controller) Focus(f Field) {
	c.mu.Lock()
	c.active = f
	c.mu.Unlock()
}

// Blur clears the active field and surfaces the error for current when it
// is invalid and not blank.  Change applies the same rule; blur repeats it
// for front ends that only report values on leave.  Unknown fields are
// ignored.
func (c *Controller) Blur(f Field, current string) {
	if _, ok := ParseField(string(f)); !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = ""
	if r := Validate(f, current); !r.Valid && strings.TrimSpace(current) != "" {
		c.errors[f] = r.Message
	}
}

// recompute derives the aggregate validity from the stored values.  It is
// the only writer of c.valid apart from the post-success reset.  Caller
// holds mu.
func (c *Controller) recompute() {
	all := true
	for _, f := range Fields {
		if !Validate(f, c.values[f]).Valid {
			all = false
			break
		}
	}
	c.valid = all
}

// -----------------------------------------------------------------------------
// Read accessors
// -----------------------------------------------------------------------------

// Values returns a copy of the current field values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Value returns the current value of one field.
func (c *Controller) Value(f Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[f]
}

// Errors returns a copy of the inline error messages.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// Error returns the inline message for f, or "".
func (c *Controller) Error(f Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[f]
}

// Valid reports whether every field currently validates.
func (c *Controller) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

// State reports the submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit is the submit button's enabled flag: idle and fully valid.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateIdle && c.valid
}

// ActiveField returns the focused field.  ok is false when none is.
func (c *Controller) ActiveField() (f Field, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.active != ""
}

// Progress returns the share of valid fields as a percentage.
func (c *Controller) Progress() float64 {
	return Progress(c.Values())
}

// Status derives the styling hint for f from its value, cached validity,
// and inline error.
func (c *Controller) Status(f Field) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	hasValue := strings.TrimSpace(c.values[f]) != ""
	switch {
	case c.errors[f] != "":
		return StatusError
	case hasValue && c.fieldValid[f]:
		return StatusValid
	case hasValue:
		return StatusInvalid
	default:
		return StatusDefault
	}
}
