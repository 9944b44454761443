package model

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/prognosis/schema"
)

var (
	ErrBadScaler = fmt.Errorf("malformed scaling parameters")
)

// ScalingParameters holds the per-feature standardisation constants fitted
// offline together with the classifier. Read-only at runtime.
type ScalingParameters struct {
	Mean  []float64 `yaml:"mean"`
	Scale []float64 `yaml:"scale"`
}

// LoadScaler reads fitted scaling parameters from a YAML artifact.
func LoadScaler(file string) (*ScalingParameters, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var scaler ScalingParameters
	if err := yaml.Unmarshal(data, &scaler); nil != err {
		return nil, err
	}

	if len(scaler.Mean) == 0 || len(scaler.Mean) != len(scaler.Scale) {
		return nil, ErrBadScaler
	}
	for _, s := range scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("%w: zero scale", ErrBadScaler)
		}
	}

	return &scaler, nil
}

// Features is the number of features the scaler was fitted with.
func (s *ScalingParameters) Features() int {
	return len(s.Mean)
}

// Transform standardises a raw feature vector: (x - mean) / scale per
// feature. The input is left untouched.
func (s *ScalingParameters) Transform(vector schema.FeatureVector) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("%w: got %d features, scaler fitted with %d",
			ErrShapeMismatch, len(vector), len(s.Mean))
	}

	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}

	return scaled, nil
}
