// Package metrics exposes Prometheus collectors for HTTP traffic and dashboard
// computations.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "habitpulse"

// Recorder is implemented by the Prometheus provider and by the no-op used when
// metrics are disabled.
type Recorder interface {
	IncRequestsTotal(route, method string, status int)
	ObserveRequestDuration(route, method string, duration time.Duration)
	// ObserveDashboard records one dashboard computation and its completion band.
	ObserveDashboard(band string, duration time.Duration)
	IncCheckInUpserts(created bool)
	IncHRVReadings()
}

// Provider holds the registered collectors
type Provider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	dashboardsTotal   *prometheus.CounterVec
	dashboardDuration prometheus.Histogram
	checkInUpserts    *prometheus.CounterVec
	hrvReadings       prometheus.Counter
}

// New registers the collectors with reg, or with the default registerer when
// reg is nil.
func New(reg prometheus.Registerer) *Provider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Provider{
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "method", "status"}),

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		dashboardsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboards_total",
			Help:      "Dashboard computations by completion band",
		}, []string{"band"}),

		dashboardDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_duration_seconds",
			Help:      "Time to load records and compute a dashboard",
			Buckets:   prometheus.DefBuckets,
		}),

		checkInUpserts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkin_upserts_total",
			Help:      "Check-in upserts by outcome",
		}, []string{"outcome"}),

		hrvReadings: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hrv_readings_total",
			Help:      "HRV readings recorded",
		}),
	}
}

func (p *Provider) IncRequestsTotal(route, method string, status int) {
	p.requestsTotal.WithLabelValues(route, method, statusBucket(status)).Inc()
}

func (p *Provider) ObserveRequestDuration(route, method string, duration time.Duration) {
	p.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (p *Provider) ObserveDashboard(band string, duration time.Duration) {
	p.dashboardsTotal.WithLabelValues(band).Inc()
	p.dashboardDuration.Observe(duration.Seconds())
}

func (p *Provider) IncCheckInUpserts(created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	p.checkInUpserts.WithLabelValues(outcome).Inc()
}

func (p *Provider) IncHRVReadings() {
	p.hrvReadings.Inc()
}

func statusBucket(code int) string {
	if code < 100 || code > 599 {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code/100) + "xx"
}

// Noop discards everything
type Noop struct{}

func (Noop) IncRequestsTotal(string, string, int)                 {}
func (Noop) ObserveRequestDuration(string, string, time.Duration) {}
func (Noop) ObserveDashboard(string, time.Duration)               {}
func (Noop) IncCheckInUpserts(bool)                               {}
func (Noop) IncHRVReadings()                                      {}
