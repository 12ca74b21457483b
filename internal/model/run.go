package model

import "time"

// RunSummary is the result of one complete analysis run.
type RunSummary struct {
	RunID         string        `json:"run_id"`
	InputPath     string        `json:"input_path"`
	RecordsLoaded int           `json:"records_loaded"`
	Patients      int           `json:"patients"` // record count after cleaning
	Stats         OverallStats  `json:"stats"`
	TablesWritten int           `json:"tables_written"`
	ChartsWritten int           `json:"charts_written"`
	Duration      time.Duration `json:"duration"`
}
