package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	framesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hdlcbody",
			Subsystem: "decoder",
			Name:      "frames_decoded_total",
			Help:      "Decoded frame bodies by kind.",
		},
		[]string{"source", "kind"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hdlcbody",
			Subsystem: "decoder",
			Name:      "decode_errors_total",
			Help:      "Rejected frame bodies by reason.",
		},
		[]string{"source", "reason"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hdlcbody",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hdlcbody",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesDecoded, decodeErrors, httpRequests, httpDuration)
	})
}

func RecordDecode(source, kind string) {
	RegisterMetrics()
	framesDecoded.WithLabelValues(source, kind).Inc()
}

func RecordDecodeError(source, reason string) {
	RegisterMetrics()
	decodeErrors.WithLabelValues(source, reason).Inc()
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}
