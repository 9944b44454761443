package predict

import (
	"fmt"

	"github.com/bitmark-inc/prognosis/model"
	"github.com/bitmark-inc/prognosis/schema"
)

// Predict scales one raw feature vector with the fitted parameters and runs
// it through the classifier. Neither the scaler nor the classifier is
// touched; the only output is the result.
func Predict(vector schema.FeatureVector, scaler *model.ScalingParameters, classifier model.Classifier) (schema.PredictionResult, error) {
	scaled, err := scaler.Transform(vector)
	if nil != err {
		return schema.PredictionResult{}, err
	}

	if len(scaled) != classifier.Features() {
		return schema.PredictionResult{}, fmt.Errorf("%w: scaler emits %d features, classifier expects %d",
			model.ErrShapeMismatch, len(scaled), classifier.Features())
	}

	probability, err := classifier.Predict(scaled)
	if nil != err {
		return schema.PredictionResult{}, err
	}

	return schema.NewPredictionResult(probability), nil
}
