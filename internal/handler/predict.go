package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"houseprice/internal/metrics"
	"houseprice/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Predictor is the prediction operation the handler serves
type Predictor interface {
	Predict(ctx context.Context, features *model.HouseFeatures) (*model.PredictionResponse, error)
}

// PredictHandler handles prediction HTTP requests
type PredictHandler struct {
	predictor Predictor
	metrics   *metrics.Metrics
}

// NewPredictHandler creates a new prediction handler. m may be nil.
func NewPredictHandler(predictor Predictor, m *metrics.Metrics) *PredictHandler {
	return &PredictHandler{
		predictor: predictor,
		metrics:   m,
	}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.reject(c, err)
		return
	}
	if raw == nil {
		h.reject(c, errors.New("request body must be a JSON object"))
		return
	}

	features, err := model.ParseHouseFeatures(raw)
	if err != nil {
		h.reject(c, err)
		return
	}

	response, err := h.predictor.Predict(c.Request.Context(), features)
	if err != nil {
		if isInputError(err) {
			h.reject(c, err)
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("prediction failed")
		h.observe(metrics.OutcomeError, 0)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed: " + err.Error()})
		return
	}

	h.observe(metrics.OutcomeSuccess, response.PredictedPrice)
	c.JSON(http.StatusOK, response)
}

func (h *PredictHandler) reject(c *gin.Context, err error) {
	h.observe(metrics.OutcomeInvalidInput, 0)
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}

func (h *PredictHandler) observe(outcome string, price float64) {
	if h.metrics != nil {
		h.metrics.ObservePrediction(outcome, price)
	}
}

func isInputError(err error) bool {
	return errors.Is(err, model.ErrMissingField) ||
		errors.Is(err, model.ErrInvalidEnum) ||
		errors.Is(err, model.ErrInvalidNumber)
}
