package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPDurationSeconds *prometheus.HistogramVec

	// Offer letter metrics
	LettersGeneratedTotal  *prometheus.CounterVec
	LetterDurationSeconds  prometheus.Histogram
	LetterPDFBytesProduced prometheus.Histogram

	// Student ID metrics
	StudentIDsIssuedTotal prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerdesk_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),

		HTTPDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "offerdesk_http_duration_seconds",
				Help:    "HTTP request duration in seconds by route and method",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"route", "method"},
		),

		// Offer letter metrics
		LettersGeneratedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerdesk_letters_generated_total",
				Help: "Total number of offer letter generation attempts by status",
			},
			[]string{"status"}, // status: success, error
		),

		LetterDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "offerdesk_letter_duration_seconds",
				Help:    "Offer letter rendering and PDF production duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30}, // matches the PDF timeout ceiling
			},
		),

		LetterPDFBytesProduced: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "offerdesk_letter_pdf_bytes",
				Help:    "Size of produced offer letter PDFs in bytes",
				Buckets: prometheus.ExponentialBuckets(16*1024, 2, 8), // 16KiB to 2MiB
			},
		),

		// Student ID metrics
		StudentIDsIssuedTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "offerdesk_student_ids_issued_total",
				Help: "Total number of student IDs persisted",
			},
		),
	}

	return m
}

// RecordLetter records an offer letter generation attempt
func (m *Metrics) RecordLetter(status string, duration float64, pdfBytes int) {
	m.LettersGeneratedTotal.WithLabelValues(status).Inc()
	m.LetterDurationSeconds.Observe(duration)
	if pdfBytes > 0 {
		m.LetterPDFBytesProduced.Observe(float64(pdfBytes))
	}
}

// RecordStudentIDIssued records a persisted student ID
func (m *Metrics) RecordStudentIDIssued() {
	m.StudentIDsIssuedTotal.Inc()
}

// GinMiddleware instruments requests with count and duration metrics.
// The route template is used as the label so path parameters do not
// explode cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(route, ctx.Request.Method, status).Inc()
		m.HTTPDurationSeconds.WithLabelValues(route, ctx.Request.Method).Observe(time.Since(start).Seconds())
	}
}
