package analysis

import (
	"sort"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

// Aggregate groups records by the dimension and computes per-category
// counts and stroke-positive rates. Categories declared in the
// dimension's Order always appear, in that order; a category with zero
// records keeps rate 0 and is flagged instead of dividing by zero.
// Undeclared categories found in the data are appended lexically.
func Aggregate(records []model.PatientRecord, dim Dimension) model.AggregateTable {
	rows := make(map[string]*model.AggregateRow)
	for _, category := range dim.Order {
		rows[category] = &model.AggregateRow{Category: category}
	}

	for _, rec := range records {
		category, ok := dim.Value(rec)
		if !ok {
			continue
		}
		row, exists := rows[category]
		if !exists {
			row = &model.AggregateRow{Category: category}
			rows[category] = row
		}
		row.Count++
		if rec.Stroke == 1 {
			row.StrokeCount++
		}
	}

	ordered := make([]model.AggregateRow, 0, len(rows))
	seen := make(map[string]bool, len(dim.Order))
	for _, category := range dim.Order {
		ordered = append(ordered, finalize(rows[category]))
		seen[category] = true
	}

	var extra []string
	for category := range rows {
		if !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		ordered = append(ordered, finalize(rows[category]))
	}

	return model.AggregateTable{Dimension: dim.Name, Rows: ordered}
}

func finalize(row *model.AggregateRow) model.AggregateRow {
	if row.Count > 0 {
		row.Rate = float64(row.StrokeCount) / float64(row.Count)
	} else {
		row.Rate = 0
		row.Flagged = true
	}
	return *row
}

// AggregateAll computes the table for every analysis dimension, keyed by
// dimension name.
func AggregateAll(records []model.PatientRecord) map[string]model.AggregateTable {
	tables := make(map[string]model.AggregateTable)
	for _, dim := range Dimensions() {
		tables[dim.Name] = Aggregate(records, dim)
	}
	return tables
}
