package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "showcase"

const (
	NameHTTPRequestsTotal   = "http_requests_total"
	NameHTTPRequestDuration = "http_request_duration_seconds"
)

var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameHTTPRequestsTotal,
		Help:      "Total HTTP requests by route, method and status code",
		Namespace: Namespace,
	},
	[]string{"route", "method", "code"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameHTTPRequestDuration,
		Help:      "HTTP request latency by route",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method", "code"},
)

// Instrument counts and times requests served by next under the given
// route label.
func Instrument(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}

	return promhttp.InstrumentHandlerDuration(
		HTTPRequestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(
			HTTPRequestsTotal.MustCurryWith(labels),
			next,
		),
	)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
