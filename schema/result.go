package schema

// RiskLevel is the two-bucket tier shown to the operator.
type RiskLevel string

const (
	HighRisk RiskLevel = "HIGH RISK"
	LowRisk  RiskLevel = "LOW RISK"
)

// PredictionResult is the outcome of one inference call. Not persisted.
type PredictionResult struct {
	Probability float64
	Label       bool
	Risk        RiskLevel
}

// NewPredictionResult derives the label and tier from a probability. The
// threshold is strict: exactly 0.5 is not labelled at risk.
func NewPredictionResult(probability float64) PredictionResult {
	label := probability > 0.5

	risk := LowRisk
	if label {
		risk = HighRisk
	}

	return PredictionResult{
		Probability: probability,
		Label:       label,
		Risk:        risk,
	}
}
