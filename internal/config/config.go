package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the run configuration, read from the environment with a
// .env file as an optional source.
type Config struct {
	// InputPath is the source CSV.
	InputPath string
	// OutputDir is the root for tables/ and charts/.
	OutputDir string
	// DBPath is the run-history SQLite file. Empty disables bookkeeping.
	DBPath string
	// ImputeBMI selects the missing-bmi policy: "median" or "none".
	ImputeBMI string
	// DropOtherGender removes the gender=Other record during cleaning.
	DropOtherGender bool
	// LogLevel is a zerolog level name; empty keeps the default.
	LogLevel string
}

// Load builds the configuration. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		InputPath:       "data/healthcare-dataset-stroke-data.csv",
		OutputDir:       "output",
		DBPath:          "analysis.db",
		ImputeBMI:       "median",
		DropOtherGender: true,
	}

	if v := os.Getenv("STROKE_INPUT"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("STROKE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("STROKE_DB"); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv("STROKE_IMPUTE_BMI"); v != "" {
		cfg.ImputeBMI = v
	}
	if v := os.Getenv("STROKE_KEEP_OTHER_GENDER"); v != "" {
		if keep, err := strconv.ParseBool(v); err == nil {
			cfg.DropOtherGender = !keep
		}
	}
	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	return cfg
}
