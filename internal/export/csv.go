package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
	"github.com/isacmj7/stroke-prediction-analysis/pkg/utils"
)

// datasetHeader is the stable column order of the full dataset export.
var datasetHeader = []string{
	"id", "gender", "age", "hypertension", "heart_disease", "ever_married",
	"work_type", "residence_type", "avg_glucose_level", "bmi",
	"smoking_status", "stroke", "age_group", "bmi_category", "glucose_category",
}

// Writer exports aggregate tables and the enriched dataset as flat CSV
// files with deterministic names and column order, so identical input
// yields identical output and reruns overwrite rather than accumulate.
type Writer struct {
	Layout *utils.OutputLayout
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{Layout: utils.NewOutputLayout(baseDir)}
}

// WriteTable writes one aggregate table as <out>/tables/<dimension>.csv
// with header category,count,rate. Returns the written path.
func (w *Writer) WriteTable(table model.AggregateTable) (string, error) {
	path := w.Layout.TablePath(table.Dimension)
	rows := make([][]string, 0, len(table.Rows)+1)
	rows = append(rows, []string{"category", "count", "rate"})
	for _, r := range table.Rows {
		rows = append(rows, []string{
			r.Category,
			strconv.Itoa(r.Count),
			utils.FormatRate(r.Rate),
		})
	}
	if err := w.writeCSV(path, rows); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDataset writes the full cleaned dataset with derived categories
// as <out>/tables/stroke_data.csv. A missing bmi renders as an empty
// cell. Returns the written path.
func (w *Writer) WriteDataset(records []model.PatientRecord) (string, error) {
	path := w.Layout.TablePath("stroke_data")
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, datasetHeader)
	for _, rec := range records {
		bmi := ""
		if rec.BMI.Valid {
			bmi = strconv.FormatFloat(rec.BMI.Float64, 'f', -1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(rec.ID),
			rec.Gender,
			strconv.FormatFloat(rec.Age, 'f', -1, 64),
			strconv.Itoa(rec.Hypertension),
			strconv.Itoa(rec.HeartDisease),
			rec.EverMarried,
			rec.WorkType,
			rec.ResidenceType,
			strconv.FormatFloat(rec.AvgGlucoseLevel, 'f', -1, 64),
			bmi,
			rec.SmokingStatus,
			strconv.Itoa(rec.Stroke),
			rec.AgeGroup,
			rec.BMICategory,
			rec.GlucoseCategory,
		})
	}
	if err := w.writeCSV(path, rows); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) writeCSV(path string, rows [][]string) error {
	if err := w.Layout.Ensure(); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	file, err := os.Create(path)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}
