package model

// AggregateRow is one (category, count, rate) tuple of a grouped summary.
type AggregateRow struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	StrokeCount int     `json:"stroke_count"`
	Rate        float64 `json:"rate"`              // stroke-positive fraction in [0,1]
	Flagged     bool    `json:"flagged,omitempty"` // set when count is zero and the rate is undefined
}

// AggregateTable is the grouped stroke summary for one analysis dimension.
// Recomputed on every run, never persisted incrementally.
type AggregateTable struct {
	Dimension string         `json:"dimension"`
	Rows      []AggregateRow `json:"rows"`
}

// Total returns the sum of per-category counts.
func (t AggregateTable) Total() int {
	total := 0
	for _, r := range t.Rows {
		total += r.Count
	}
	return total
}

// OverallStats summarizes the whole dataset.
type OverallStats struct {
	TotalPatients int     `json:"total_patients"`
	StrokeCases   int     `json:"stroke_cases"`
	NoStrokeCases int     `json:"no_stroke_cases"`
	StrokeRate    float64 `json:"stroke_rate"` // fraction in [0,1]
}

// CorrelationMatrix holds pairwise Pearson correlations between numeric
// features. Values is indexed [row][col] over Features.
type CorrelationMatrix struct {
	Features []string    `json:"features"`
	Values   [][]float64 `json:"values"`
}
