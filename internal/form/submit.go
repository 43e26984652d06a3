// internal/form/submit.go
//
// Contact form – submission state machine.
//
// Context
//   A submission moves idle → submitting → idle.  Validation failures never
//   leave idle.  Every attempt that reaches submitting ends in exactly one
//   of three outcomes (success, transport error, server error), each with
//   exactly one toast, and always returns to idle.
//
// Workflow
//   •  Begin validates, flips to submitting, and returns the sanitised
//      payload.  Event-loop front ends then send it asynchronously.
//   •  Complete interprets the response (or transport error), resets the
//      form on success, raises the toast, and returns to idle.
//   •  Submit chains Begin → Sender.Send → Complete for synchronous callers.
//      Panics in the sender or an observer are recovered, so a submission
//      that left idle always comes back.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/yanizio/contactform/internal/endpoint"
)

// SuccessMessage is the toast shown after the endpoint accepts the form.
const SuccessMessage = "Form submitted successfully! 🎉"

// ErrSubmitting is returned by Begin while another submission is in flight.
var ErrSubmitting = errors.New("submission already in progress")

// ValidationError carries the per-field failures that stopped a submission.
// Callers detect it with IsValidationError.
type ValidationError struct{ Fields Errors }

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed (%d field(s))", len(ve.Fields))
}

// IsValidationError reports whether err came from a failed Begin.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// -----------------------------------------------------------------------------
// Outcomes
// -----------------------------------------------------------------------------

// OutcomeKind classifies how a submit attempt ended.
type OutcomeKind int

const (
	OutcomeIgnored        OutcomeKind = iota // another submission in flight, or nothing to complete
	OutcomeInvalid                           // stopped by validation, no request sent
	OutcomeSuccess                           // 2xx
	OutcomeTransportError                    // request never completed
	OutcomeServerError                       // completed with a non-2xx status
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSuccess:
		return "success"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeServerError:
		return "server_error"
	default:
		return "ignored"
	}
}

// Outcome describes one submit attempt.  Message is the toast text for the
// three terminal kinds and empty otherwise.
type Outcome struct {
	Kind        OutcomeKind
	StatusCode  int
	Failure     endpoint.Failure
	Message     string
	BodyPreview string // server errors only, for logs
	Err         error
}

// -----------------------------------------------------------------------------
// State machine
// -----------------------------------------------------------------------------

// Begin starts a submission.  It returns ErrSubmitting when one is already
// in flight, a *ValidationError when any field is invalid (the inline
// errors are replaced with exactly the failing fields), or the payload to
// send.  On success the controller is in StateSubmitting and the caller
// must call Complete exactly once.
func (c *Controller) Begin() (endpoint.Payload, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return endpoint.Payload{}, ErrSubmitting
	}

	if errs := ValidateAll(c.values); len(errs) > 0 {
		c.errors = errs
		c.mu.Unlock()
		c.observe("rejected", func() { c.observer.SubmitRejected(errs.Clone()) })
		return endpoint.Payload{}, &ValidationError{Fields: errs.Clone()}
	}

	c.state = StateSubmitting
	c.started = c.clock.Now()
	p := BuildPayload(c.values)
	c.mu.Unlock()

	c.observe("started", func() { c.observer.SubmitStarted(p) })
	return p, nil
}

// Complete finishes the in-flight submission with the sender's result.
// Calling it while idle returns OutcomeIgnored and changes nothing.
func (c *Controller) Complete(res *endpoint.Response, sendErr error) Outcome {
	out := interpret(res, sendErr)

	c.mu.Lock()
	if c.state != StateSubmitting {
		c.mu.Unlock()
		return Outcome{Kind: OutcomeIgnored}
	}

	kind := KindError
	if out.Kind == OutcomeSuccess {
		kind = KindSuccess
		c.values = EmptyValues()
		c.errors = make(Errors)
		c.fieldValid = make(map[Field]bool)
		c.valid = false
	}
	c.state = StateIdle
	c.showLocked(out.Message, kind)
	elapsed := c.clock.Since(c.started)
	c.mu.Unlock()

	c.observe("finished", func() { c.observer.SubmitFinished(out, elapsed) })
	return out
}

// Submit runs a whole submission synchronously.  It blocks for the
// duration of the request, bounded by ctx and the sender's own timeout.
func (c *Controller) Submit(ctx context.Context) Outcome {
	p, err := c.Begin()
	switch {
	case IsValidationError(err):
		return Outcome{Kind: OutcomeInvalid, Err: err}
	case err != nil:
		return Outcome{Kind: OutcomeIgnored, Err: err}
	}

	res, sendErr := c.Send(ctx, p)
	return c.Complete(res, sendErr)
}

// Send hands p to the sender and turns a panic into an ordinary error so
// the controller always gets back to idle.  Front ends that split a
// submission with Begin and Complete call it in between.
func (c *Controller) Send(ctx context.Context, p endpoint.Payload) (res *endpoint.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("contact sender panicked", "panic", r)
			res, err = nil, fmt.Errorf("sender panic: %v", r)
		}
	}()
	return c.sender.Send(ctx, p)
}

// observe runs one observer callback outside the lock.  A panicking
// observer is logged and otherwise ignored so the state machine always
// gets back to idle.
func (c *Controller) observe(event string, call func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("contact observer panicked", "event", event, "panic", r)
		}
	}()
	call()
}

// interpret maps a sender result onto an Outcome.
func interpret(res *endpoint.Response, sendErr error) Outcome {
	switch {
	case sendErr != nil:
		reason := endpoint.Classify(sendErr)
		return Outcome{
			Kind:    OutcomeTransportError,
			Failure: reason,
			Message: reason.Message(),
			Err:     sendErr,
		}
	case res == nil:
		return Outcome{
			Kind:    OutcomeTransportError,
			Failure: endpoint.FailureUnexpected,
			Message: endpoint.FailureUnexpected.Message(),
			Err:     errors.New("no response"),
		}
	case !res.OK():
		return Outcome{
			Kind:        OutcomeServerError,
			StatusCode:  res.StatusCode,
			Message:     res.ErrorMessage(),
			BodyPreview: res.BodyPreview(),
		}
	default:
		return Outcome{
			Kind:       OutcomeSuccess,
			StatusCode: res.StatusCode,
			Message:    SuccessMessage,
		}
	}
}
