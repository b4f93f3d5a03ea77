package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"houseprice/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var logBuffer bytes.Buffer
	log.Logger = zerolog.New(&logBuffer).With().Timestamp().Logger()

	t.Run("logs successful request", func(t *testing.T) {
		logBuffer.Reset()
		router := gin.New()
		router.Use(HTTPLogger())
		router.POST("/predict", func(c *gin.Context) {
			zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
			c.JSON(http.StatusOK, gin.H{"predicted_price": 1.0})
		})

		req := httptest.NewRequest(http.MethodPost, "/predict", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))

		logOutput := logBuffer.String()
		assert.Contains(t, logOutput, "[access]")
		assert.Contains(t, logOutput, "inside handler")
		assert.Contains(t, logOutput, `"request_id":"req-123"`)
		assert.Contains(t, logOutput, `"route":"/predict"`)
		assert.Contains(t, logOutput, `"status":200`)
	})

	t.Run("generates request id and logs client errors as warn", func(t *testing.T) {
		logBuffer.Reset()
		router := gin.New()
		router.Use(HTTPLogger())
		router.POST("/predict", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/predict", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
		assert.Contains(t, logBuffer.String(), `"level":"warn"`)
	})

	t.Run("unknown route", func(t *testing.T) {
		logBuffer.Reset()
		router := gin.New()
		router.Use(HTTPLogger())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, logBuffer.String(), `"route":"unmatched"`)
	})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.POST("/predict", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/predict", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	count, err := testutil.GatherAndCount(m.Registry(), "houseprice_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `houseprice_http_requests_total{method="POST",route="/predict",status="200"} 3`)
}
