package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "frontdesk_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	IntakeRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_intake_registrations_total",
			Help: "Total intake registrations by flow",
		},
		[]string{"flow"},
	)

	IntakeTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_intake_transitions_total",
			Help: "Total intake lifecycle transitions by flow and transition",
		},
		[]string{"flow", "transition"},
	)

	IntakeRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_intake_rejections_total",
			Help: "Lifecycle requests rejected by kind",
		},
		[]string{"flow", "transition", "kind"},
	)
)

// Middleware records request count and latency keyed by the matched route
// pattern, so /api/public/sessions/:id stays one series.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
