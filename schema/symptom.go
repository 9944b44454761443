package schema

type SymptomType string

// SymptomFromCode is a map which key is the prompt code of a symptom and value is a object of Symptom
var SymptomFromCode = map[int]Symptom{
	Symptoms[0].Code: Symptoms[0],
	Symptoms[1].Code: Symptoms[1],
	Symptoms[2].Code: Symptoms[2],
	Symptoms[3].Code: Symptoms[3],
	Symptoms[4].Code: Symptoms[4],
	Symptoms[5].Code: Symptoms[5],
	Symptoms[6].Code: Symptoms[6],
	Symptoms[7].Code: Symptoms[7],
	Symptoms[8].Code: Symptoms[8],
}

const (
	// NoSymptomCode is the sentinel answer for "no symptoms". It keeps its
	// own slot in the feature layout but never raises a flag.
	NoSymptomCode = 0
)

const (
	NoSymptom SymptomType = "none"
	Fever     SymptomType = "fever"
	Cough     SymptomType = "cough"
	Fatigue   SymptomType = "fatigue"
	Breath    SymptomType = "breath"
	Nasal     SymptomType = "nasal"
	Throat    SymptomType = "throat"
	Chest     SymptomType = "chest"
	Face      SymptomType = "face"
)

type Symptom struct {
	Code int         `json:"code"`
	ID   SymptomType `json:"id"`
	Name string      `json:"name"`
	Desc string      `json:"desc"`
}

// Symptoms - the fixed symptom vocabulary. Order matters: the position of a
// symptom in this slice is its flag position in the feature layout and must
// match the schema the classifier was trained against.
var Symptoms = []Symptom{
	{NoSymptomCode, NoSymptom, "None", "No symptoms at all"},
	{1, Fever, "Fever", "Body temperature above 100ºF (38ºC)"},
	{2, Cough, "Dry cough", "Without mucous or phlegm (rattling)"},
	{3, Fatigue, "Fatigue or tiredness", "Unusual lack of energy or feeling run down"},
	{4, Breath, "Shortness of breath", "Constriction or difficulty inhaling fully"},
	{5, Nasal, "Nasal congestion", "Stuffy or blocked nose"},
	{6, Throat, "Sore throat", "Throat pain, scratchiness, or irritation"},
	{7, Chest, "Chest pain", "Persistent pain or pressure in the chest"},
	{8, Face, "Bluish lips or face", "Not caused by cold exposure"},
}
