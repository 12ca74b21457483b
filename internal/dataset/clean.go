package dataset

import (
	"sort"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

// CleanOptions controls the cleaning pass.
type CleanOptions struct {
	// ImputeBMIMedian fills missing bmi values with the dataset median.
	ImputeBMIMedian bool
	// DropOtherGender removes gender=Other records. The published dataset
	// contains a single such row.
	DropOtherGender bool
}

// DefaultCleanOptions mirrors the original analysis: impute the median,
// drop the lone Other record.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{ImputeBMIMedian: true, DropOtherGender: true}
}

// Clean returns a new record slice with the missing-bmi state normalized
// and the configured policies applied. The input is never mutated.
// Cleaning is deterministic and idempotent: applying it to already
// cleaned records yields an identical slice.
func Clean(records []model.PatientRecord, opts CleanOptions) []model.PatientRecord {
	out := make([]model.PatientRecord, 0, len(records))
	for _, rec := range records {
		if opts.DropOtherGender && rec.Gender == model.GenderOther {
			continue
		}
		out = append(out, rec)
	}

	if opts.ImputeBMIMedian {
		if median, ok := medianBMI(out); ok {
			for i := range out {
				if !out[i].BMI.Valid {
					out[i].BMI.Float64 = median
					out[i].BMI.Valid = true
				}
			}
		}
	}

	return out
}

// medianBMI computes the median over present bmi values: the middle
// value for an odd count, the midpoint of the two middle values for an
// even count. Returns false when no value is present.
func medianBMI(records []model.PatientRecord) (float64, bool) {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		if rec.BMI.Valid {
			values = append(values, rec.BMI.Float64)
		}
	}
	n := len(values)
	if n == 0 {
		return 0, false
	}
	sort.Float64s(values)
	if n%2 == 1 {
		return values[n/2], true
	}
	return (values[n/2-1] + values[n/2]) / 2, true
}
