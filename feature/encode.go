package feature

import (
	"fmt"

	"github.com/bitmark-inc/prognosis/schema"
)

var (
	ErrNegativeAge      = fmt.Errorf("age must be a non-negative integer")
	ErrUnknownSymptom   = fmt.Errorf("unknown symptom code")
	ErrUnknownCondition = fmt.Errorf("unknown condition code")
)

var (
	symptomIndex   = map[int]int{}
	conditionIndex = map[int]int{}
)

func init() {
	for i, s := range schema.Symptoms {
		symptomIndex[s.Code] = i
	}
	for i, c := range schema.Conditions {
		conditionIndex[c.Code] = i
	}
}

// Encode builds the fixed-length feature vector for one profile. Codes
// outside the vocabularies are rejected with ErrUnknownSymptom or
// ErrUnknownCondition.
func Encode(profile schema.PatientProfile) (schema.FeatureVector, error) {
	return encode(profile, true)
}

// EncodeLenient is Encode with unknown codes silently dropped. It exists for
// callers replaying historic answer sets recorded before code validation.
func EncodeLenient(profile schema.PatientProfile) (schema.FeatureVector, error) {
	return encode(profile, false)
}

func encode(profile schema.PatientProfile, strict bool) (schema.FeatureVector, error) {
	if profile.Age < 0 {
		return nil, ErrNegativeAge
	}

	vector := make(schema.FeatureVector, schema.VectorLength())

	// Flags first, age and sex overwrite the two leading slots afterwards.
	// The sentinel codes are accepted but raise no flag, so answering
	// "none" encodes the same as answering nothing.
	for _, code := range profile.SymptomCodes {
		index, ok := symptomIndex[code]
		if !ok {
			if strict {
				return nil, fmt.Errorf("%w: %d", ErrUnknownSymptom, code)
			}
			continue
		}
		if code == schema.NoSymptomCode {
			continue
		}
		vector[schema.SymptomPosition(index)] = 1
	}

	for _, code := range profile.ConditionCodes {
		index, ok := conditionIndex[code]
		if !ok {
			if strict {
				return nil, fmt.Errorf("%w: %d", ErrUnknownCondition, code)
			}
			continue
		}
		if code == schema.NoConditionCode {
			continue
		}
		vector[schema.ConditionPosition(index)] = 1
	}

	vector[schema.AgePosition] = float64(profile.Age)
	vector[schema.SexPosition] = float64(profile.Sex)

	return vector, nil
}
