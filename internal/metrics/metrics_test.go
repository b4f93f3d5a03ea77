package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObservePrediction(t *testing.T) {
	m := New()

	m.ObservePrediction(OutcomeSuccess, 4500000)
	m.ObservePrediction(OutcomeSuccess, 3100000)
	m.ObservePrediction(OutcomeInvalidInput, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues(OutcomeInvalidInput)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.predictions.WithLabelValues(OutcomeError)))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/predict", "200", 0.002)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `houseprice_http_requests_total{method="POST",route="/predict",status="200"} 1`), body)
	assert.Contains(t, body, "houseprice_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}
