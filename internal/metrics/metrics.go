// Package metrics holds the Prometheus instruments for contact submissions.
// All collectors are registered with the global registry, so mounting
// promhttp.Handler() in main is enough to expose them on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanizio/contactform/internal/endpoint"
	"github.com/yanizio/contactform/internal/form"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Submit attempts by outcome (success, server_error, transport_error).",
		}, []string{"outcome"})

	TransportFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_transport_failures_total",
			Help: "Requests that never completed, by classified reason.",
		}, []string{"reason"})

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_validation_failures_total",
			Help: "Submit attempts stopped by validation, counted per failing field.",
		}, []string{"field"})

	SubmissionsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "contact_submissions_in_flight",
			Help: "Submissions waiting for the endpoint (0 or 1 per form).",
		})

	SubmissionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "contact_submission_duration_seconds",
			Help:    "Time from request start to terminal outcome.",
			Buckets: prometheus.DefBuckets,
		})
)

func init() {
	prometheus.MustRegister(
		SubmissionsTotal,
		TransportFailuresTotal,
		ValidationFailuresTotal,
		SubmissionsInFlight,
		SubmissionDuration,
	)
}

// Observer feeds controller lifecycle events into the collectors above.
type Observer struct{}

var _ form.Observer = Observer{}

func (Observer) SubmitStarted(endpoint.Payload) { SubmissionsInFlight.Inc() }

func (Observer) SubmitRejected(errs form.Errors) {
	for f := range errs {
		ValidationFailuresTotal.WithLabelValues(string(f)).Inc()
	}
}

func (Observer) SubmitFinished(o form.Outcome, elapsed time.Duration) {
	SubmissionsInFlight.Dec()
	SubmissionsTotal.WithLabelValues(o.Kind.String()).Inc()
	SubmissionDuration.Observe(elapsed.Seconds())
	if o.Kind == form.OutcomeTransportError {
		TransportFailuresTotal.WithLabelValues(o.Failure.String()).Inc()
	}
}
