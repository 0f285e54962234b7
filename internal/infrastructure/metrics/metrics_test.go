package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCounter(t *testing.T) {
	before := testutil.ToFloat64(EventsTotal.WithLabelValues(EventTaskCompleted))
	Event(EventTaskCompleted)
	Event(EventTaskCompleted)
	assert.Equal(t, before+2, testutil.ToFloat64(EventsTotal.WithLabelValues(EventTaskCompleted)))
}

func TestHandlerExposesCollectors(t *testing.T) {
	done := RequestStarted()
	done(http.MethodGet, "/api/shelters", http.StatusNotFound)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `relief_http_requests_total{method="GET",path="/api/shelters",status="4xx"}`)
	assert.Contains(t, body, "relief_http_inflight_requests 0")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "2xx", statusLabel(201))
	assert.Equal(t, "3xx", statusLabel(304))
	assert.Equal(t, "4xx", statusLabel(429))
	assert.Equal(t, "5xx", statusLabel(503))
}
