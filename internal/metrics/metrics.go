// Package metrics collects Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what middleware and services report into.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordAuthRejection(reason string)
	RecordBookingRejection(reason string)
}

type Collector struct {
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	authRejections    *prometheus.CounterVec
	bookingRejections *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "building_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_auth_rejections_total",
			Help: "Requests rejected by the authentication or role guard.",
		}, []string{"reason"}),
		bookingRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "building_booking_rejections_total",
			Help: "Agreement creations rejected by the booking check.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.authRejections,
		c.bookingRejections,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordAuthRejection(reason string) {
	c.authRejections.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordBookingRejection(reason string) {
	c.bookingRejections.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Useful where metrics are not wired.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordAuthRejection(string)                      {}
func (Nop) RecordBookingRejection(string)                   {}
