package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

// Overall computes dataset-level stroke statistics.
func Overall(records []model.PatientRecord) model.OverallStats {
	stats := model.OverallStats{TotalPatients: len(records)}
	for _, rec := range records {
		if rec.Stroke == 1 {
			stats.StrokeCases++
		}
	}
	stats.NoStrokeCases = stats.TotalPatients - stats.StrokeCases
	if stats.TotalPatients > 0 {
		stats.StrokeRate = float64(stats.StrokeCases) / float64(stats.TotalPatients)
	}
	return stats
}

// numericFeature extracts one numeric column; false excludes the record
// (only bmi can be missing).
type numericFeature struct {
	name  string
	value func(model.PatientRecord) (float64, bool)
}

func present(get func(model.PatientRecord) float64) func(model.PatientRecord) (float64, bool) {
	return func(r model.PatientRecord) (float64, bool) { return get(r), true }
}

var correlationFeatures = []numericFeature{
	{"age", present(func(r model.PatientRecord) float64 { return r.Age })},
	{"hypertension", present(func(r model.PatientRecord) float64 { return float64(r.Hypertension) })},
	{"heart_disease", present(func(r model.PatientRecord) float64 { return float64(r.HeartDisease) })},
	{"avg_glucose_level", present(func(r model.PatientRecord) float64 { return r.AvgGlucoseLevel })},
	{"bmi", func(r model.PatientRecord) (float64, bool) { return r.BMI.Float64, r.BMI.Valid }},
	{"stroke", present(func(r model.PatientRecord) float64 { return float64(r.Stroke) })},
}

// Correlations computes the Pearson correlation matrix over the numeric
// features. Records with a missing bmi are excluded pairwise, so the
// other feature pairs still use every record.
func Correlations(records []model.PatientRecord) model.CorrelationMatrix {
	n := len(correlationFeatures)
	m := model.CorrelationMatrix{
		Features: make([]string, n),
		Values:   make([][]float64, n),
	}
	for i, f := range correlationFeatures {
		m.Features[i] = f.name
		m.Values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		m.Values[i][i] = 1
		for j := i + 1; j < n; j++ {
			r := pairCorrelation(records, correlationFeatures[i], correlationFeatures[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairCorrelation(records []model.PatientRecord, a, b numericFeature) float64 {
	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, rec := range records {
		x, okX := a.value(rec)
		y, okY := b.value(rec)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		// zero variance in a column
		return 0
	}
	return r
}
