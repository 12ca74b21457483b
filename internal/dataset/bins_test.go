package dataset

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

func TestAgeGroupEdges(t *testing.T) {
	cases := map[float64]string{
		0:    "0-18",
		18:   "0-18",
		18.5: "19-30",
		30:   "19-30",
		45:   "31-45",
		60:   "46-60",
		75:   "61-75",
		76:   "75+",
		100:  "75+",
	}
	for age, want := range cases {
		assert.Equal(t, want, AgeGroup(age), "age %v", age)
	}
}

func TestBMICategoryEdges(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal", BMICategory(18.5))
	assert.Equal(t, "Normal", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Overweight", BMICategory(29.9))
	assert.Equal(t, "Obese", BMICategory(30))
}

func TestGlucoseCategoryEdges(t *testing.T) {
	assert.Equal(t, "Normal", GlucoseCategory(99.9))
	assert.Equal(t, "Pre-diabetic", GlucoseCategory(100))
	assert.Equal(t, "Pre-diabetic", GlucoseCategory(125.9))
	assert.Equal(t, "Diabetic", GlucoseCategory(126))
}

func TestCategorizeAttachesLabels(t *testing.T) {
	records := []model.PatientRecord{
		{Age: 67, AvgGlucoseLevel: 228.69, BMI: sql.NullFloat64{Float64: 36.6, Valid: true}},
		{Age: 25, AvgGlucoseLevel: 90, BMI: sql.NullFloat64{}},
	}

	out := Categorize(records)
	require.Len(t, out, 2)

	assert.Equal(t, "61-75", out[0].AgeGroup)
	assert.Equal(t, "Obese", out[0].BMICategory)
	assert.Equal(t, "Diabetic", out[0].GlucoseCategory)

	assert.Equal(t, "19-30", out[1].AgeGroup)
	assert.Empty(t, out[1].BMICategory, "missing bmi must not get a category")
	assert.Equal(t, "Normal", out[1].GlucoseCategory)
}
