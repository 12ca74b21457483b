package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the run-history database and creates the schema. Every
// store function is a no-op returning nil until InitDB succeeds, so the
// analysis can run with bookkeeping disabled.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input_path TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_stages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			stage TEXT,
			status TEXT,
			started_at DATETIME,
			completed_at DATETIME,
			records INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS run_artifacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			kind TEXT,
			path TEXT,
			rows INTEGER,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// SaveRun records a new analysis run.
func SaveRun(runID, inputPath string) error {
	if db == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, input_path, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, inputPath, "running", now, now)
	return err
}

// UpdateRunStatus updates a run's status.
func UpdateRunStatus(runID, status string) error {
	if db == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveStageProgress records a stage transition with timing and record count.
func SaveStageProgress(runID, stage, status string, startedAt, completedAt *time.Time, records int) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO run_stages (run_id, stage, status, started_at, completed_at, records) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, status, startedAt, completedAt, records)
	return err
}

// SaveArtifact records an exported output file.
func SaveArtifact(runID, kind, path string, rows int) error {
	if db == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_artifacts (run_id, kind, path, rows, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, kind, path, rows, now)
	return err
}

// SaveRunError records a fatal run error.
func SaveRunError(runID string, runErr error) error {
	if db == nil || runErr == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), now)
	return err
}

// RunInfo is one row of the run history.
type RunInfo struct {
	ID        string
	InputPath string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListRuns returns all runs, newest first.
func ListRuns() ([]RunInfo, error) {
	if db == nil {
		return nil, nil
	}
	rows, err := db.Query(`SELECT id, input_path, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.ID, &r.InputPath, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// StageInfo is one recorded stage transition.
type StageInfo struct {
	Stage   string
	Status  string
	Records int
}

// GetRunStages returns the recorded stage transitions for a run, in
// insertion order.
func GetRunStages(runID string) ([]StageInfo, error) {
	if db == nil {
		return nil, nil
	}
	rows, err := db.Query(`SELECT stage, status, records FROM run_stages WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []StageInfo
	for rows.Next() {
		var s StageInfo
		if err := rows.Scan(&s.Stage, &s.Status, &s.Records); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}
