package inference

import (
	"errors"
	"fmt"
)

// ErrRowWidth is returned when an input row does not match the coefficient count
var ErrRowWidth = errors.New("input row width mismatch")

// LinearModel evaluates intercept + Σ coef[j]·x[j]. Immutable after construction
// and safe for concurrent use.
type LinearModel struct {
	weights      []float64
	bias         float64
	version      string
	featureNames []string
}

// NewLinearModel validates the artifact against expectedOrder and builds the model
func NewLinearModel(a *Artifact, expectedOrder []string) (*LinearModel, error) {
	if a == nil {
		return nil, fmt.Errorf("nil model artifact")
	}
	if err := a.Validate(expectedOrder); err != nil {
		return nil, err
	}

	weights := make([]float64, len(a.Coefficients))
	copy(weights, a.Coefficients)
	names := make([]string, len(a.FeatureNames))
	copy(names, a.FeatureNames)

	return &LinearModel{
		weights:      weights,
		bias:         a.Intercept,
		version:      a.Version,
		featureNames: names,
	}, nil
}

// Load reads the artifact at path and builds a validated model
func Load(path string, expectedOrder []string) (*LinearModel, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	m, err := NewLinearModel(a, expectedOrder)
	if err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return m, nil
}

// Predict returns one prediction per row of X
func (m *LinearModel) Predict(X [][]float64) ([]float64, error) {
	pred := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.weights) {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrRowWidth, i, len(row), len(m.weights))
		}
		sum := m.bias
		for j, v := range row {
			sum += m.weights[j] * v
		}
		pred[i] = sum
	}
	return pred, nil
}

// Version returns the artifact version label, possibly empty
func (m *LinearModel) Version() string {
	return m.version
}

// FeatureNames returns a copy of the declared input layout
func (m *LinearModel) FeatureNames() []string {
	out := make([]string, len(m.featureNames))
	copy(out, m.featureNames)
	return out
}
