package feature_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prognosis/feature"
	"github.com/bitmark-inc/prognosis/schema"
)

func TestEncodeLengthAndLeadingPositions(t *testing.T) {
	for _, profile := range []schema.PatientProfile{
		{Age: 0, Sex: schema.Female},
		{Age: 37, Sex: schema.Male, SymptomCodes: []int{1, 2}},
		{Age: 105, Sex: schema.Female, ConditionCodes: []int{3}},
	} {
		vector, err := feature.Encode(profile)
		assert.Nil(t, err, "wrong Encode")
		assert.Equal(t, schema.VectorLength(), len(vector), "wrong vector length")
		assert.Equal(t, float64(profile.Age), vector[schema.AgePosition], "wrong age position")
		assert.Equal(t, float64(profile.Sex), vector[schema.SexPosition], "wrong sex position")
	}
}

func TestEncodeFlags(t *testing.T) {
	profile := schema.PatientProfile{
		Age:            50,
		Sex:            schema.Male,
		SymptomCodes:   []int{1, 4},
		ConditionCodes: []int{2, 7},
	}

	vector, err := feature.Encode(profile)
	assert.Nil(t, err, "wrong Encode")

	want := map[int]bool{
		schema.SymptomPosition(1):   true, // fever
		schema.SymptomPosition(4):   true, // breath
		schema.ConditionPosition(2): true, // diabetes
		schema.ConditionPosition(7): true, // immune
	}

	for pos := schema.FlagOffset; pos < schema.VectorLength(); pos++ {
		if want[pos] {
			assert.Equal(t, float64(1), vector[pos], "flag not set")
		} else {
			assert.Equal(t, float64(0), vector[pos], "flag set unexpectedly")
		}
	}
}

func TestEncodeSentinelEqualsEmpty(t *testing.T) {
	empty, err := feature.Encode(schema.PatientProfile{Age: 20, Sex: schema.Female})
	assert.Nil(t, err, "wrong Encode")

	none, err := feature.Encode(schema.PatientProfile{
		Age:            20,
		Sex:            schema.Female,
		SymptomCodes:   []int{schema.NoSymptomCode},
		ConditionCodes: []int{schema.NoConditionCode},
	})
	assert.Nil(t, err, "wrong Encode")

	assert.Equal(t, empty, none, "sentinel answer must encode like no answer")
}

func TestEncodeKnownProfile(t *testing.T) {
	// 66 year old female with a dry cough and asthma
	vector, err := feature.Encode(schema.PatientProfile{
		Age:            66,
		Sex:            schema.Female,
		SymptomCodes:   []int{2},
		ConditionCodes: []int{1},
	})
	assert.Nil(t, err, "wrong Encode")

	assert.Equal(t, float64(66), vector[schema.AgePosition], "wrong age")
	assert.Equal(t, float64(0), vector[schema.SexPosition], "wrong sex encoding")
	assert.Equal(t, float64(1), vector[schema.SymptomPosition(2)], "cough flag not set")
	assert.Equal(t, float64(1), vector[schema.ConditionPosition(1)], "asthma flag not set")

	var flagged int
	for pos := schema.FlagOffset; pos < schema.VectorLength(); pos++ {
		if vector[pos] == 1 {
			flagged++
		}
	}
	assert.Equal(t, 2, flagged, "unexpected extra flags")
}

func TestEncodeUnknownCode(t *testing.T) {
	profile := schema.PatientProfile{Age: 30, Sex: schema.Male, SymptomCodes: []int{99}}

	_, err := feature.Encode(profile)
	assert.True(t, errors.Is(err, feature.ErrUnknownSymptom), "wrong error for unknown symptom")

	profile = schema.PatientProfile{Age: 30, Sex: schema.Male, ConditionCodes: []int{-4}}
	_, err = feature.Encode(profile)
	assert.True(t, errors.Is(err, feature.ErrUnknownCondition), "wrong error for unknown condition")
}

func TestEncodeLenientDropsUnknownCodes(t *testing.T) {
	known, err := feature.Encode(schema.PatientProfile{Age: 30, Sex: schema.Male, SymptomCodes: []int{1}})
	assert.Nil(t, err, "wrong Encode")

	mixed, err := feature.EncodeLenient(schema.PatientProfile{Age: 30, Sex: schema.Male, SymptomCodes: []int{1, 99}})
	assert.Nil(t, err, "wrong EncodeLenient")

	assert.Equal(t, known, mixed, "unknown code must be dropped, not encoded")
}

func TestEncodeNegativeAge(t *testing.T) {
	_, err := feature.Encode(schema.PatientProfile{Age: -1, Sex: schema.Female})
	assert.Equal(t, feature.ErrNegativeAge, err, "wrong error for negative age")
}
