package inference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeLinearRegression is the only artifact type this service evaluates
const TypeLinearRegression = "linear_regression"

var (
	ErrUnsupportedType   = errors.New("unsupported model type")
	ErrFeatureOrder      = errors.New("feature order mismatch")
	ErrShape             = errors.New("coefficient shape mismatch")
	ErrNonFiniteArtifact = errors.New("artifact contains non-finite values")
)

// Artifact is the exported form of a trained regression model
type Artifact struct {
	Type         string    `json:"type" yaml:"type"`
	Version      string    `json:"version,omitempty" yaml:"version,omitempty"`
	FeatureNames []string  `json:"feature_names" yaml:"feature_names"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// LoadArtifact reads a JSON or YAML artifact from disk, chosen by extension
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported model artifact extension %q", ext)
	}
}

// DecodeJSON parses a JSON artifact, rejecting unknown keys
func DecodeJSON(data []byte) (*Artifact, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var a Artifact
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	return &a, nil
}

// DecodeYAML parses a YAML artifact, rejecting unknown keys
func DecodeYAML(data []byte) (*Artifact, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var a Artifact
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	return &a, nil
}

// Validate checks the artifact against the feature layout the caller will send
func (a *Artifact) Validate(expectedOrder []string) error {
	if a.Type != TypeLinearRegression {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, a.Type)
	}

	if len(a.FeatureNames) != len(expectedOrder) {
		return fmt.Errorf("%w: artifact declares %d features, expected %d",
			ErrFeatureOrder, len(a.FeatureNames), len(expectedOrder))
	}
	for i, name := range expectedOrder {
		if a.FeatureNames[i] != name {
			return fmt.Errorf("%w: position %d is %q, expected %q",
				ErrFeatureOrder, i, a.FeatureNames[i], name)
		}
	}

	if len(a.Coefficients) != len(a.FeatureNames) {
		return fmt.Errorf("%w: %d coefficients for %d features",
			ErrShape, len(a.Coefficients), len(a.FeatureNames))
	}

	if !isFinite(a.Intercept) {
		return fmt.Errorf("%w: intercept", ErrNonFiniteArtifact)
	}
	for i, c := range a.Coefficients {
		if !isFinite(c) {
			return fmt.Errorf("%w: coefficient for %s", ErrNonFiniteArtifact, a.FeatureNames[i])
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
