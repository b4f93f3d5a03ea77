package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"houseprice/internal/model"

	"github.com/rs/zerolog/log"
)

// ErrInference wraps failures of the model itself, as opposed to bad input
var ErrInference = errors.New("inference failed")

// Regressor is the loaded model artifact
type Regressor interface {
	// Predict returns one value per input row
	Predict(X [][]float64) ([]float64, error)

	// Version labels the artifact for logs and audit rows
	Version() string
}

// PredictionRecorder persists served predictions
type PredictionRecorder interface {
	LogPrediction(ctx context.Context, entry *model.PredictionLog) error
}

// PredictionService turns house features into a price
type PredictionService struct {
	model        Regressor
	recorder     PredictionRecorder
	auditTimeout time.Duration
}

// NewPredictionService creates a prediction service. recorder may be nil.
func NewPredictionService(regressor Regressor, recorder PredictionRecorder, auditTimeout time.Duration) *PredictionService {
	if auditTimeout <= 0 {
		auditTimeout = 2 * time.Second
	}
	return &PredictionService{
		model:        regressor,
		recorder:     recorder,
		auditTimeout: auditTimeout,
	}
}

// ModelVersion returns the version of the loaded artifact
func (s *PredictionService) ModelVersion() string {
	return s.model.Version()
}

// Predict encodes the features, runs a single-row batch through the model
// and rounds the result to two decimals
func (s *PredictionService) Predict(ctx context.Context, features *model.HouseFeatures) (*model.PredictionResponse, error) {
	startTime := time.Now()

	vector, err := Encode(*features)
	if err != nil {
		return nil, err
	}

	predictions, err := s.model.Predict([][]float64{vector.Slice()})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if len(predictions) == 0 {
		return nil, fmt.Errorf("%w: model returned no predictions", ErrInference)
	}

	price := RoundPrice(predictions[0])
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: model returned non-finite value", ErrInference)
	}

	took := time.Since(startTime)
	log.Ctx(ctx).Debug().
		Floats64("features", vector[:]).
		Float64("predicted_price", price).
		Dur("took", took).
		Msg("prediction served")

	// Log prediction (non-blocking)
	if s.recorder != nil {
		entry := model.NewPredictionLog(*features, vector[:], price, s.model.Version(), took)
		go s.record(entry)
	}

	return &model.PredictionResponse{PredictedPrice: price}, nil
}

func (s *PredictionService) record(entry *model.PredictionLog) {
	ctx, cancel := context.WithTimeout(context.Background(), s.auditTimeout)
	defer cancel()

	if err := s.recorder.LogPrediction(ctx, entry); err != nil {
		log.Warn().Err(err).Str("prediction_id", entry.ID.String()).Msg("failed to record prediction")
	}
}

// RoundPrice rounds to two decimal places, halves away from zero
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
