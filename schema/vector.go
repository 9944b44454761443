package schema

// FeatureVector is the fixed-order numeric input of the classifier.
//
// Layout, matching the training schema exactly:
//
//	position 0                      age
//	position 1                      encoded sex
//	positions 2 .. 2+S-1            symptom flags, vocabulary order
//	positions 2+S .. 2+S+C-1        condition flags, vocabulary order
//
// The two leading slots are the placeholder columns of the training schema:
// flag positions are computed over the whole vector first and age/sex are
// written in afterwards. The sentinel "none" entries own positions 2 and 2+S
// and always stay zero.
type FeatureVector []float64

const (
	AgePosition = 0
	SexPosition = 1

	// FlagOffset is where the symptom flag block starts.
	FlagOffset = 2
)

// VectorLength is the schema-defined length of every feature vector. The
// scaler and the classifier must agree with it or predictions are garbage.
func VectorLength() int {
	return FlagOffset + len(Symptoms) + len(Conditions)
}

// SymptomPosition returns the flag position of the i-th vocabulary symptom.
func SymptomPosition(index int) int {
	return FlagOffset + index
}

// ConditionPosition returns the flag position of the i-th vocabulary condition.
func ConditionPosition(index int) int {
	return FlagOffset + len(Symptoms) + index
}
