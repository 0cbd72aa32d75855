package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "buriti"

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route template.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Domain counters, incremented by the service layer.
	VideoUploads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "video_uploads_total",
		Help:      "Videos stored successfully.",
	})

	QuizSubmissions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_submissions_total",
		Help:      "Quiz responses accepted and graded.",
	})

	CertificatesIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "certificates_issued_total",
		Help:      "Completion certificates rendered for eligible students.",
	})
)

func Init() {
	prometheus.MustRegister(httpRequests, httpDuration, VideoUploads, QuizSubmissions, CertificatesIssued)
}

// MetricsMiddleware records per-route counters and latency. Unmatched paths
// collapse into a single "unmatched" label so cardinality stays bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if route == "/metrics" {
			return
		}

		method := c.Request.Method
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
