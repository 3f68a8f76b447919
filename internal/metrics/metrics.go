package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPaymentNotifyRetriesTotal returns a counter of retry attempts made while notifying payment
func NewPaymentNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payment_notify_retries_total",
		Help: "Total number of retry attempts performed while notifying payment",
	})
}

// NewAssignmentTransitionsTotal returns a counter of status transition attempts by from, to and result.
func NewAssignmentTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_transitions_total",
		Help: "Total number of assignment status transition attempts",
	}, []string{"from", "to", "result"})
}

// NewOutboxRelayedTotal returns a counter of relayed payment outbox rows by result (sent, failed).
func NewOutboxRelayedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_outbox_relayed_total",
		Help: "Total number of payment outbox rows processed by the relay",
	}, []string{"result"})
}

// NewJobEventsTotal returns a counter of consumed job events by event name and result.
func NewJobEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_events_total",
		Help: "Total number of consumed job events",
	}, []string{"event", "result"})
}

// NewHTTPRequestsTotal returns a counter of HTTP requests by method, route pattern and status.
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a histogram of HTTP request latency.
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}
