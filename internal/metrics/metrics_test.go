package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(reg)

	p.IncRequestsTotal("/api/v1/dashboard", "GET", 200)
	p.IncRequestsTotal("/api/v1/dashboard", "GET", 204)
	p.IncRequestsTotal("/api/v1/dashboard", "GET", 503)
	p.ObserveRequestDuration("/api/v1/dashboard", "GET", 25*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.requestsTotal.WithLabelValues("/api/v1/dashboard", "GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.requestsTotal.WithLabelValues("/api/v1/dashboard", "GET", "5xx")))

	n, err := testutil.GatherAndCount(reg, "habitpulse_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProvider_DomainCounters(t *testing.T) {
	p := New(prometheus.NewRegistry())

	p.ObserveDashboard("favorable", time.Millisecond)
	p.ObserveDashboard("favorable", time.Millisecond)
	p.IncCheckInUpserts(true)
	p.IncCheckInUpserts(false)
	p.IncCheckInUpserts(false)
	p.IncHRVReadings()

	assert.Equal(t, 2.0, testutil.ToFloat64(p.dashboardsTotal.WithLabelValues("favorable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.checkInUpserts.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.checkInUpserts.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.hrvReadings))
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, "2xx", statusBucket(201))
	assert.Equal(t, "4xx", statusBucket(429))
	assert.Equal(t, "0", statusBucket(0))
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	r.IncRequestsTotal("/", "GET", 200)
	r.ObserveRequestDuration("/", "GET", time.Second)
	r.ObserveDashboard("moderate", time.Second)
	r.IncCheckInUpserts(true)
	r.IncHRVReadings()
}
