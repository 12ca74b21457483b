package dataset

import "github.com/isacmj7/stroke-prediction-analysis/internal/model"

// Age group bins with upper-inclusive edges at 18/30/45/60/75.
var (
	AgeGroups     = []string{"0-18", "19-30", "31-45", "46-60", "61-75", "75+"}
	ageUpperEdges = []float64{18, 30, 45, 60, 75}
)

// BMI categories at the standard 18.5/25/30 cut points.
var BMICategories = []string{"Underweight", "Normal", "Overweight", "Obese"}

// Glucose categories at the clinical 100/126 mg/dL cut points.
var GlucoseCategories = []string{"Normal", "Pre-diabetic", "Diabetic"}

// AgeGroup returns the bin label for an age.
func AgeGroup(age float64) string {
	for i, edge := range ageUpperEdges {
		if age <= edge {
			return AgeGroups[i]
		}
	}
	return AgeGroups[len(AgeGroups)-1]
}

// BMICategory returns the bin label for a bmi value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// GlucoseCategory returns the bin label for an average glucose level.
func GlucoseCategory(glucose float64) string {
	switch {
	case glucose < 100:
		return "Normal"
	case glucose < 126:
		return "Pre-diabetic"
	default:
		return "Diabetic"
	}
}

// Categorize returns a new slice with the derived age, bmi, and glucose
// group labels attached to each record. A record with missing bmi gets
// no bmi category and stays out of bmi-based aggregates.
func Categorize(records []model.PatientRecord) []model.PatientRecord {
	out := make([]model.PatientRecord, len(records))
	for i, rec := range records {
		rec.AgeGroup = AgeGroup(rec.Age)
		if rec.BMI.Valid {
			rec.BMICategory = BMICategory(rec.BMI.Float64)
		} else {
			rec.BMICategory = ""
		}
		rec.GlucoseCategory = GlucoseCategory(rec.AvgGlucoseLevel)
		out[i] = rec
	}
	return out
}
