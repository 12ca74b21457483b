package model

import "database/sql"

// Gender values as they appear in the source file.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// BMISentinel is the placeholder the source file uses for an absent bmi value.
const BMISentinel = "N/A"

// PatientRecord is one typed row of the stroke dataset.
type PatientRecord struct {
	ID              int             `json:"id"`
	Gender          string          `json:"gender"`
	Age             float64         `json:"age"`
	Hypertension    int             `json:"hypertension"`  // 0 or 1
	HeartDisease    int             `json:"heart_disease"` // 0 or 1
	EverMarried     string          `json:"ever_married"`  // Yes or No
	WorkType        string          `json:"work_type"`
	ResidenceType   string          `json:"residence_type"` // Rural or Urban
	AvgGlucoseLevel float64         `json:"avg_glucose_level"`
	BMI             sql.NullFloat64 `json:"bmi"` // invalid when the source held the sentinel
	SmokingStatus   string          `json:"smoking_status"`
	Stroke          int             `json:"stroke"` // outcome label, 0 or 1

	// Derived categories attached by the binning step, empty until then.
	AgeGroup        string `json:"age_group,omitempty"`
	BMICategory     string `json:"bmi_category,omitempty"`
	GlucoseCategory string `json:"glucose_category,omitempty"`
}
