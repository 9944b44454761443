package predict_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prognosis/feature"
	"github.com/bitmark-inc/prognosis/model"
	"github.com/bitmark-inc/prognosis/predict"
	"github.com/bitmark-inc/prognosis/schema"
)

type stubClassifier struct {
	features    int
	probability float64
	err         error
}

func (s stubClassifier) Features() int {
	return s.features
}

func (s stubClassifier) Predict(_ []float64) (float64, error) {
	return s.probability, s.err
}

func identityScaler(features int) *model.ScalingParameters {
	scaler := &model.ScalingParameters{
		Mean:  make([]float64, features),
		Scale: make([]float64, features),
	}
	for i := range scaler.Scale {
		scaler.Scale[i] = 1
	}
	return scaler
}

func TestPredictKnownProfile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	vector, err := feature.Encode(schema.PatientProfile{
		Age:            66,
		Sex:            schema.Female,
		SymptomCodes:   []int{2},
		ConditionCodes: []int{1},
	})
	assert.Nil(t, err, "wrong Encode")

	classifier := stubClassifier{features: schema.VectorLength(), probability: 0.2494}

	result, err := predict.Predict(vector, identityScaler(schema.VectorLength()), classifier)
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, 0.2494, result.Probability, "wrong probability")
	assert.False(t, result.Label, "wrong label")
	assert.Equal(t, schema.LowRisk, result.Risk, "wrong risk tier")
}

func TestPredictThresholdBoundary(t *testing.T) {
	scaler := identityScaler(2)

	for probability, wantLabel := range map[float64]bool{
		0.5:    false, // strict threshold
		0.5001: true,
		0.4999: false,
		1.0:    true,
		0.0:    false,
	} {
		classifier := stubClassifier{features: 2, probability: probability}
		result, err := predict.Predict(schema.FeatureVector{1, 2}, scaler, classifier)
		assert.Nil(t, err, "wrong Predict")
		assert.Equal(t, wantLabel, result.Label, "wrong label for %v", probability)

		wantRisk := schema.LowRisk
		if wantLabel {
			wantRisk = schema.HighRisk
		}
		assert.Equal(t, wantRisk, result.Risk, "wrong risk tier for %v", probability)
	}
}

func TestPredictDeterministic(t *testing.T) {
	scaler := &model.ScalingParameters{Mean: []float64{40, 0.5}, Scale: []float64{20, 0.5}}
	classifier := stubClassifier{features: 2, probability: 0.731}

	first, err := predict.Predict(schema.FeatureVector{66, 0}, scaler, classifier)
	assert.Nil(t, err, "wrong Predict")
	second, err := predict.Predict(schema.FeatureVector{66, 0}, scaler, classifier)
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, first, second, "prediction must be deterministic")
}

func TestPredictShapeMismatch(t *testing.T) {
	// scaler disagrees with the vector
	_, err := predict.Predict(schema.FeatureVector{1, 2, 3}, identityScaler(2), stubClassifier{features: 2})
	assert.True(t, errors.Is(err, model.ErrShapeMismatch), "wrong error for scaler mismatch")

	// classifier disagrees with the scaler
	_, err = predict.Predict(schema.FeatureVector{1, 2}, identityScaler(2), stubClassifier{features: 3})
	assert.True(t, errors.Is(err, model.ErrShapeMismatch), "wrong error for classifier mismatch")
}

func TestPredictClassifierError(t *testing.T) {
	wantErr := errors.New("corrupt weights")
	_, err := predict.Predict(schema.FeatureVector{1, 2}, identityScaler(2), stubClassifier{features: 2, err: wantErr})
	assert.Equal(t, wantErr, err, "classifier error must surface")
}
