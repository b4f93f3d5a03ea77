package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prediction outcomes
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// Metrics holds the service collectors on their own registry
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	predictions     *prometheus.CounterVec
	predictedPrice  prometheus.Histogram
}

// New creates and registers the service collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "houseprice_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "houseprice_http_request_duration_seconds",
				Help:    "HTTP handler duration",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.02, 0.1, 0.3, 1},
			},
			[]string{"method", "route"},
		),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "houseprice_predictions_total",
				Help: "Prediction requests by outcome",
			},
			[]string{"outcome"},
		),
		predictedPrice: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "houseprice_predicted_price",
				Help:    "Distribution of served price predictions",
				Buckets: prometheus.ExponentialBuckets(500000, 2, 8),
			},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.predictions,
		m.predictedPrice,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObservePrediction records a prediction outcome; price is only used on success
func (m *Metrics) ObservePrediction(outcome string, price float64) {
	m.predictions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.predictedPrice.Observe(price)
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
