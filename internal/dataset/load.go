package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
	"github.com/isacmj7/stroke-prediction-analysis/pkg/utils"
)

// Columns required in the source file, by canonical (lowercased) header
// name. The published dataset capitalizes "Residence_type"; header
// lookup is case-insensitive.
var requiredColumns = []string{
	"id",
	"gender",
	"age",
	"hypertension",
	"heart_disease",
	"ever_married",
	"work_type",
	"residence_type",
	"avg_glucose_level",
	"bmi",
	"smoking_status",
	"stroke",
}

// Load reads the stroke CSV at path into typed records. It is a local
// file read only: a missing file yields a MissingFileError, a missing
// column or unparsable value yields a DataFormatError. Every data row
// produces exactly one record.
func Load(path string) ([]model.PatientRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, &DataFormatError{Reason: fmt.Sprintf("unreadable header: %v", err)}
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[utils.CleanHeader(h)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &DataFormatError{Column: name, Reason: "required column missing"}
		}
	}

	var records []model.PatientRecord
	seen := make(map[int]bool)
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &DataFormatError{Row: row + 1, Reason: fmt.Sprintf("unreadable row: %v", err)}
		}
		row++

		rec, err := parseRecord(fields, cols, row)
		if err != nil {
			return nil, err
		}
		if seen[rec.ID] {
			return nil, &DataFormatError{Column: "id", Row: row, Reason: fmt.Sprintf("duplicate patient id %d", rec.ID)}
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(fields []string, cols map[string]int, row int) (model.PatientRecord, error) {
	var rec model.PatientRecord
	var err error

	field := func(name string) string { return fields[cols[name]] }

	if rec.ID, err = utils.ParseIntField(field("id")); err != nil {
		return rec, &DataFormatError{Column: "id", Row: row, Reason: err.Error()}
	}
	rec.Gender = field("gender")
	if rec.Age, err = utils.ParseFloatField(field("age")); err != nil {
		return rec, &DataFormatError{Column: "age", Row: row, Reason: err.Error()}
	}
	if rec.Age < 0 {
		return rec, &DataFormatError{Column: "age", Row: row, Reason: "age must be non-negative"}
	}
	if rec.Hypertension, err = utils.ParseBinaryField(field("hypertension")); err != nil {
		return rec, &DataFormatError{Column: "hypertension", Row: row, Reason: err.Error()}
	}
	if rec.HeartDisease, err = utils.ParseBinaryField(field("heart_disease")); err != nil {
		return rec, &DataFormatError{Column: "heart_disease", Row: row, Reason: err.Error()}
	}
	rec.EverMarried = field("ever_married")
	rec.WorkType = field("work_type")
	rec.ResidenceType = field("residence_type")
	if rec.AvgGlucoseLevel, err = utils.ParseFloatField(field("avg_glucose_level")); err != nil {
		return rec, &DataFormatError{Column: "avg_glucose_level", Row: row, Reason: err.Error()}
	}

	// The bmi column is the one field allowed to be missing: the dataset
	// marks absent values with a sentinel string.
	bmi, ok := utils.ParseNullableFloat(field("bmi"), model.BMISentinel)
	if !ok {
		return rec, &DataFormatError{Column: "bmi", Row: row, Reason: fmt.Sprintf("not a number or sentinel: %q", field("bmi"))}
	}
	rec.BMI = bmi

	rec.SmokingStatus = field("smoking_status")
	if rec.Stroke, err = utils.ParseBinaryField(field("stroke")); err != nil {
		return rec, &DataFormatError{Column: "stroke", Row: row, Reason: err.Error()}
	}

	return rec, nil
}
