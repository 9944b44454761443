package schema

type ConditionType string

// ConditionFromCode is a map which key is the prompt code of a pre-existing
// condition and value is a object of Condition
var ConditionFromCode = map[int]Condition{
	Conditions[0].Code: Conditions[0],
	Conditions[1].Code: Conditions[1],
	Conditions[2].Code: Conditions[2],
	Conditions[3].Code: Conditions[3],
	Conditions[4].Code: Conditions[4],
	Conditions[5].Code: Conditions[5],
	Conditions[6].Code: Conditions[6],
	Conditions[7].Code: Conditions[7],
}

const (
	// NoConditionCode is the sentinel answer for "no pre-existing
	// conditions", mirroring NoSymptomCode.
	NoConditionCode = 0
)

const (
	NoCondition  ConditionType = "none"
	Asthma       ConditionType = "asthma"
	Diabetes     ConditionType = "diabetes"
	Heart        ConditionType = "heart"
	Hypertension ConditionType = "hypertension"
	Lung         ConditionType = "lung"
	Kidney       ConditionType = "kidney"
	Immune       ConditionType = "immune"
)

type Condition struct {
	Code int           `json:"code"`
	ID   ConditionType `json:"id"`
	Name string        `json:"name"`
	Desc string        `json:"desc"`
}

// Conditions - the fixed pre-existing-condition vocabulary. Same ordering
// rule as Symptoms: slice position is flag position.
var Conditions = []Condition{
	{NoConditionCode, NoCondition, "None", "No pre-existing conditions"},
	{1, Asthma, "Asthma", "Chronic or allergic asthma"},
	{2, Diabetes, "Diabetes", "Type 1 or type 2 diabetes"},
	{3, Heart, "Heart disease", "Coronary artery disease or heart failure"},
	{4, Hypertension, "Hypertension", "High blood pressure"},
	{5, Lung, "Chronic lung disease", "COPD, emphysema, or chronic bronchitis"},
	{6, Kidney, "Chronic kidney disease", "Reduced kidney function or dialysis"},
	{7, Immune, "Weakened immune system", "Immunodeficiency or immunosuppressive treatment"},
}
