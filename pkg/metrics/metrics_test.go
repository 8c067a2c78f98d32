package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("hairbooking")

	m.IncAppointmentsCreated()
	m.IncAppointmentsCreated()
	m.IncSlotConflicts()
	m.ObserveHTTP(http.MethodGet, "/healthz", http.StatusOK, 10*time.Millisecond)
	m.ObserveQuery("select", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsCreated.WithLabelValues("hairbooking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotConflicts.WithLabelValues("hairbooking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("hairbooking", "GET", "/healthz", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("hairbooking", "select", "error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncAppointmentsCreated()
		m.IncSlotConflicts()
		m.IncNotificationsFailed()
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
		m.ObserveQuery("select", nil, time.Second)
		m.SetPoolStats(1, 1, 0)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("hairbooking")
	m.IncAppointmentsCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "appointments_created_total")
}
