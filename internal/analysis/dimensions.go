package analysis

import (
	"strconv"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

// Dimension is one grouping field for stroke-rate aggregation.
type Dimension struct {
	// Name is the table file stem, e.g. "work_type".
	Name string
	// Label is the human-readable axis/title text.
	Label string
	// Order is the canonical category order. Empty means sort lexically.
	Order []string
	// Display maps raw categories to chart labels. Nil renders raw values.
	Display map[string]string
	// Value extracts the category for a record; false excludes the
	// record from this dimension (e.g. missing bmi).
	Value func(model.PatientRecord) (string, bool)
}

func stringDim(name, label string, order []string, get func(model.PatientRecord) string) Dimension {
	return Dimension{
		Name:  name,
		Label: label,
		Order: order,
		Value: func(rec model.PatientRecord) (string, bool) {
			v := get(rec)
			return v, v != ""
		},
	}
}

func flagDim(name, label string, display map[string]string, get func(model.PatientRecord) int) Dimension {
	return Dimension{
		Name:    name,
		Label:   label,
		Order:   []string{"0", "1"},
		Display: display,
		Value: func(rec model.PatientRecord) (string, bool) {
			return strconv.Itoa(get(rec)), true
		},
	}
}

// Dimensions returns the ten analysis dimensions, in export order.
func Dimensions() []Dimension {
	return []Dimension{
		stringDim("gender", "Gender", nil,
			func(r model.PatientRecord) string { return r.Gender }),
		flagDim("hypertension", "Hypertension Status",
			map[string]string{"0": "No Hypertension", "1": "Hypertension"},
			func(r model.PatientRecord) int { return r.Hypertension }),
		flagDim("heart_disease", "Heart Disease Status",
			map[string]string{"0": "No Heart Disease", "1": "Heart Disease"},
			func(r model.PatientRecord) int { return r.HeartDisease }),
		stringDim("ever_married", "Marital History", []string{"No", "Yes"},
			func(r model.PatientRecord) string { return r.EverMarried }),
		stringDim("work_type", "Work Type", nil,
			func(r model.PatientRecord) string { return r.WorkType }),
		stringDim("residence_type", "Residence Type", []string{"Rural", "Urban"},
			func(r model.PatientRecord) string { return r.ResidenceType }),
		stringDim("smoking_status", "Smoking Status", nil,
			func(r model.PatientRecord) string { return r.SmokingStatus }),
		stringDim("age_group", "Age Group", dataset.AgeGroups,
			func(r model.PatientRecord) string { return r.AgeGroup }),
		stringDim("bmi_category", "BMI Category", dataset.BMICategories,
			func(r model.PatientRecord) string { return r.BMICategory }),
		stringDim("glucose_category", "Glucose Category", dataset.GlucoseCategories,
			func(r model.PatientRecord) string { return r.GlucoseCategory }),
	}
}
