package schema

// Sex is the binary category the classifier was trained with.
type Sex int

const (
	Female Sex = 0
	Male   Sex = 1
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// PatientProfile is one round of answers from the operator. It is built up
// by the interactive session, submitted for inference once, and discarded.
type PatientProfile struct {
	Age            int
	Sex            Sex
	SymptomCodes   []int
	ConditionCodes []int
}
