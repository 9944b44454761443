package model

import (
	"fmt"
)

var (
	// ErrShapeMismatch - the vector handed in does not have the number of
	// features the artifact was fitted with. Never coerced; always surfaced.
	ErrShapeMismatch = fmt.Errorf("feature count does not match the fitted schema")
)

// Classifier maps a scaled feature vector to a probability in [0, 1].
// Implementations are loaded once at startup and never mutated afterwards.
type Classifier interface {
	// Features is the number of input features the model was trained with.
	Features() int

	// Predict returns the positive-class probability for one vector.
	Predict(features []float64) (float64, error)
}
