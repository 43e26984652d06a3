// internal/form/observer.go
//
// Contact form – observability hooks.
//
// Context
//   The controller reports three well-defined moments to an Observer: a
//   submission leaving for the endpoint, a submission stopped by validation,
//   and a submission reaching its terminal outcome.  Logging and metrics
//   plug in here; the controller itself never writes to a log directly.
//
//------------------------------------------------------------------------------

package form

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/contactform/internal/endpoint"
)

// Observer receives submission lifecycle events.  Calls are made outside
// the controller's lock and must not call back into the controller.
type Observer interface {
	SubmitStarted(p endpoint.Payload)
	SubmitRejected(errs Errors)
	SubmitFinished(o Outcome, elapsed time.Duration)
}

// Observers fans every event out to each member in order.
type Observers []Observer

func (obs Observers) SubmitStarted(p endpoint.Payload) {
	for _, o := range obs {
		o.SubmitStarted(p)
	}
}

func (obs Observers) SubmitRejected(errs Errors) {
	for _, o := range obs {
		o.SubmitRejected(errs)
	}
}

func (obs Observers) SubmitFinished(out Outcome, elapsed time.Duration) {
	for _, o := range obs {
		o.SubmitFinished(out, elapsed)
	}
}

// -----------------------------------------------------------------------------
// zap-backed observer
// -----------------------------------------------------------------------------

type logObserver struct{ log *zap.SugaredLogger }

// LogObserver writes one structured line per event.  Personal details are
// never logged: only the email domain and field sizes.
func LogObserver(log *zap.SugaredLogger) Observer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return logObserver{log: log}
}

func (l logObserver) SubmitStarted(p endpoint.Payload) {
	l.log.Infow("contact submission started",
		"email_domain", emailDomain(p.Email),
		"phone_digits", len(p.Phone),
		"name_len", len(p.Name),
		"message_len", len(p.Message),
	)
}

func (l logObserver) SubmitRejected(errs Errors) {
	fields := make([]string, 0, len(errs))
	for _, f := range Fields {
		if _, bad := errs[f]; bad {
			fields = append(fields, string(f))
		}
	}
	l.log.Infow("contact submission blocked by validation", "fields", fields)
}

func (l logObserver) SubmitFinished(o Outcome, elapsed time.Duration) {
	kv := []any{
		"outcome", o.Kind.String(),
		"elapsed", elapsed,
	}
	switch o.Kind {
	case OutcomeSuccess:
		l.log.Infow("contact submission accepted", append(kv, "status", o.StatusCode)...)
	case OutcomeServerError:
		l.log.Warnw("contact submission refused",
			append(kv, "status", o.StatusCode, "message", o.Message, "body", o.BodyPreview)...)
	case OutcomeTransportError:
		l.log.Errorw("contact submission failed",
			append(kv, "reason", o.Failure.String(), "err", o.Err)...)
	default:
		l.log.Debugw("contact submission finished", kv...)
	}
}

// emailDomain returns the part after the last "@", or "" when there is none.
func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}
