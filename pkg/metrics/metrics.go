package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mailer_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mailer_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EmailsSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "mailer_emails_sent_total", Help: "Emails delivered to the transport"},
	)
	EmailsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "mailer_emails_failed_total", Help: "Emails rejected by the transport"},
	)
	SendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mailer_send_duration_seconds",
			Help:    "Time spent on a single transport send",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecipientsParsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "mailer_recipients_parsed_total", Help: "Recipients parsed from uploaded files"},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal, APIRequestDuration,
		EmailsSentTotal, EmailsFailedTotal, SendDuration,
		RecipientsParsedTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
