package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "data/healthcare-dataset-stroke-data.csv", cfg.InputPath)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "analysis.db", cfg.DBPath)
	assert.Equal(t, "median", cfg.ImputeBMI)
	assert.True(t, cfg.DropOtherGender)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STROKE_INPUT", "fixtures/stroke.csv")
	t.Setenv("STROKE_OUTPUT_DIR", "out")
	t.Setenv("STROKE_DB", "")
	t.Setenv("STROKE_IMPUTE_BMI", "none")
	t.Setenv("STROKE_KEEP_OTHER_GENDER", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "fixtures/stroke.csv", cfg.InputPath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Empty(t, cfg.DBPath, "empty STROKE_DB disables the run-history store")
	assert.Equal(t, "none", cfg.ImputeBMI)
	assert.False(t, cfg.DropOtherGender)
	assert.Equal(t, "debug", cfg.LogLevel)
}
