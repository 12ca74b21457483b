package analysis

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

func record(gender string, stroke int) model.PatientRecord {
	return model.PatientRecord{
		Gender:          gender,
		Age:             50,
		EverMarried:     "Yes",
		WorkType:        "Private",
		ResidenceType:   "Urban",
		AvgGlucoseLevel: 110,
		BMI:             sql.NullFloat64{Float64: 26, Valid: true},
		SmokingStatus:   "never smoked",
		Stroke:          stroke,
	}
}

func genderDim(t *testing.T) Dimension {
	t.Helper()
	for _, dim := range Dimensions() {
		if dim.Name == "gender" {
			return dim
		}
	}
	t.Fatal("gender dimension not registered")
	return Dimension{}
}

func TestAggregateGenderFixture(t *testing.T) {
	// 5 patients: Male x3 (1 stroke), Female x2 (1 stroke).
	records := []model.PatientRecord{
		record(model.GenderMale, 1),
		record(model.GenderMale, 0),
		record(model.GenderMale, 0),
		record(model.GenderFemale, 1),
		record(model.GenderFemale, 0),
	}

	table := Aggregate(records, genderDim(t))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 5, table.Total())

	// lexical order for open-vocabulary dimensions
	assert.Equal(t, "Female", table.Rows[0].Category)
	assert.Equal(t, 2, table.Rows[0].Count)
	assert.InDelta(t, 0.5, table.Rows[0].Rate, 1e-9)

	assert.Equal(t, "Male", table.Rows[1].Category)
	assert.Equal(t, 3, table.Rows[1].Count)
	assert.Equal(t, 1, table.Rows[1].StrokeCount)
	assert.InDelta(t, 1.0/3.0, table.Rows[1].Rate, 1e-9)
}

func TestAggregateAllPartitionCompleteness(t *testing.T) {
	records := dataset.Categorize([]model.PatientRecord{
		record(model.GenderMale, 1),
		record(model.GenderMale, 0),
		record(model.GenderFemale, 0),
		record(model.GenderFemale, 1),
		record(model.GenderFemale, 0),
	})

	tables := AggregateAll(records)
	require.Len(t, tables, 10)
	for name, table := range tables {
		assert.Equal(t, len(records), table.Total(), "dimension %s", name)
		for _, row := range table.Rows {
			if row.Count > 0 {
				assert.GreaterOrEqual(t, row.Rate, 0.0, "dimension %s", name)
				assert.LessOrEqual(t, row.Rate, 1.0, "dimension %s", name)
			}
		}
	}
}

func TestAggregateMissingBMIExcluded(t *testing.T) {
	withMissing := record(model.GenderMale, 0)
	withMissing.BMI = sql.NullFloat64{}
	records := dataset.Categorize([]model.PatientRecord{
		record(model.GenderFemale, 1),
		withMissing,
	})

	tables := AggregateAll(records)
	assert.Equal(t, 1, tables["bmi_category"].Total(), "missing bmi must stay out of bmi aggregates")
	assert.Equal(t, 2, tables["gender"].Total())
}

func TestAggregateEmptyDeclaredCategoryFlagged(t *testing.T) {
	records := []model.PatientRecord{record(model.GenderMale, 0)}

	var everMarried Dimension
	for _, dim := range Dimensions() {
		if dim.Name == "ever_married" {
			everMarried = dim
		}
	}
	table := Aggregate(records, everMarried)
	require.Len(t, table.Rows, 2)

	no := table.Rows[0]
	assert.Equal(t, "No", no.Category)
	assert.Equal(t, 0, no.Count)
	assert.Equal(t, 0.0, no.Rate)
	assert.True(t, no.Flagged, "zero-count category must be flagged, not divided")

	yes := table.Rows[1]
	assert.Equal(t, "Yes", yes.Category)
	assert.Equal(t, 1, yes.Count)
	assert.False(t, yes.Flagged)
}

func TestAggregateDeclaredOrderPreserved(t *testing.T) {
	records := dataset.Categorize([]model.PatientRecord{
		func() model.PatientRecord { r := record(model.GenderMale, 0); r.Age = 80; return r }(),
		func() model.PatientRecord { r := record(model.GenderMale, 0); r.Age = 10; return r }(),
	})

	tables := AggregateAll(records)
	table := tables["age_group"]
	require.Len(t, table.Rows, len(dataset.AgeGroups))
	for i, label := range dataset.AgeGroups {
		assert.Equal(t, label, table.Rows[i].Category)
	}
}
