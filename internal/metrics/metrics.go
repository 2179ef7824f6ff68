package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSubmitted      = "submitted"
	OutcomeRejected       = "rejected"
	OutcomeTransportError = "transport_error"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Gateway Metrics
	SendsTotal   *prometheus.CounterVec
	SendDuration *prometheus.HistogramVec
	SendRetries  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "esteria_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "esteria_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "esteria_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		SendsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "esteria_sms_sends_total",
				Help: "Total number of gateway send attempts by outcome",
			},
			[]string{"outcome"},
		),
		SendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "esteria_sms_send_duration_seconds",
				Help:    "Duration of gateway send round trips in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		SendRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "esteria_sms_send_retries_total",
				Help: "Total number of send retries after transport failures",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordSend(outcome string, duration time.Duration) {
	m.SendsTotal.WithLabelValues(outcome).Inc()
	m.SendDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}
