package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// PredictionLog is one row of the prediction_logs audit table
type PredictionLog struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Payload        HouseFeatures   `json:"payload" db:"payload"`
	Features       pgvector.Vector `json:"-" db:"features"`
	PredictedPrice float64         `json:"predicted_price" db:"predicted_price"`
	ModelVersion   string          `json:"model_version" db:"model_version"`
	ResponseTimeUs int64           `json:"response_time_us" db:"response_time_us"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// NewPredictionLog builds an audit row for a served prediction
func NewPredictionLog(features HouseFeatures, vector []float64, price float64, modelVersion string, took time.Duration) *PredictionLog {
	vec := make([]float32, len(vector))
	for i, v := range vector {
		vec[i] = float32(v)
	}
	return &PredictionLog{
		ID:             uuid.New(),
		Payload:        features,
		Features:       pgvector.NewVector(vec),
		PredictedPrice: price,
		ModelVersion:   modelVersion,
		ResponseTimeUs: took.Microseconds(),
		CreatedAt:      time.Now().UTC(),
	}
}

// Value implements driver.Valuer interface
func (h HouseFeatures) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements sql.Scanner interface
func (h *HouseFeatures) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*h = HouseFeatures{}
		return nil
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported payload type %T", value)
	}
}
