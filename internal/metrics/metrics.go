package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dealer_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dealer_auth_login_total",
			Help: "Total number of login attempts",
		},
	)

	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dealer_auth_register_total",
			Help: "Total number of registration attempts",
		},
	)

	// TenantCreatedCounter counts registrations that created a new tenant rather than joining one
	TenantCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dealer_tenants_created_total",
			Help: "Total number of tenants created by registration",
		},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealer_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // duplicate_email, weak_password, invalid_credentials, invalid_token, ...
	)

	UploadBytesHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dealer_document_upload_bytes",
			Help:    "Size of uploaded document files",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDurationHistogram,
		LoginCounter,
		RegisterCounter,
		TenantCreatedCounter,
		AuthErrorCounter,
		UploadBytesHistogram,
	)
}

func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// ObserveRequest records one finished HTTP request
func ObserveRequest(method, path, status string, elapsed time.Duration) {
	RequestCounter.WithLabelValues(method, path, status).Inc()
	RequestDurationHistogram.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
