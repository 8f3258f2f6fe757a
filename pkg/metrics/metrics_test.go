package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
		m.ObserveNotification("email", false)
		m.IncServiceRequestsCreated()
		m.IncMechanicsAssigned()
		m.ObserveDBQuery("select", false, time.Millisecond)
		m.SetDBPoolStats(1, 1, 0, 0)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveNotification("email", true)
	m.ObserveNotification("email", false)
	m.ObserveNotification("email", false)
	m.IncServiceRequestsCreated()
	m.ObserveHTTPRequest("POST", "/book_service", 201, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("email", "delivered")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("email", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/book_service", "201")))
}
