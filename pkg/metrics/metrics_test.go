package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "lift")

	m.IncBookingCreated("reservation")
	m.IncBookingCreated("reservation")
	m.IncBookingRejected("overlapping")
	m.ObserveHTTPRequest("GET", "/api/v1/bookings", 200, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("lift", "reservation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("lift", "overlapping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("lift", "GET", "/api/v1/bookings", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated("hold")
		m.IncBookingRejected("closed_day")
		m.ObserveStoreCall("list", "ok", time.Second)
		m.ObserveHTTPRequest("POST", "/x", 500, time.Second)
	})
}
