package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isacmj7/stroke-prediction-analysis/internal/config"
	"github.com/isacmj7/stroke-prediction-analysis/internal/store"
)

const mainFixture = `id,gender,age,hypertension,heart_disease,ever_married,work_type,Residence_type,avg_glucose_level,bmi,smoking_status,stroke
9046,Male,67,0,1,Yes,Private,Urban,228.69,36.6,formerly smoked,1
51676,Female,61,0,0,Yes,Self-employed,Rural,202.21,N/A,never smoked,1
31112,Male,80,0,1,Yes,Private,Rural,105.92,32.5,never smoked,1
60182,Female,49,0,0,Yes,Private,Urban,171.23,34.4,smokes,0
1665,Female,79,1,0,Yes,Self-employed,Rural,174.12,24,never smoked,1
56669,Male,81,0,0,Yes,Private,Urban,186.21,29,formerly smoked,0
53882,Male,74,1,1,Yes,Private,Rural,70.09,27.4,never smoked,0
10434,Female,69,0,0,No,Private,Urban,94.39,22.8,never smoked,0
27419,Female,59,0,0,Yes,Private,Rural,76.15,28.2,Unknown,0
60491,Female,78,0,0,Yes,Private,Urban,58.57,24.2,Unknown,0
12095,Female,12,0,0,No,children,Rural,95.12,18,Unknown,0
`

func mainConfig(t *testing.T, inputPath string) config.Config {
	t.Helper()
	return config.Config{
		InputPath:       inputPath,
		OutputDir:       t.TempDir(),
		DBPath:          filepath.Join(t.TempDir(), "analysis.db"),
		ImputeBMI:       "median",
		DropOtherGender: true,
	}
}

func TestRunClosesStoreOnSuccess(t *testing.T) {
	input := filepath.Join(t.TempDir(), "stroke.csv")
	require.NoError(t, os.WriteFile(input, []byte(mainFixture), 0644))
	cfg := mainConfig(t, input)

	require.NoError(t, run(cfg, zerolog.Nop()))

	// a closed store reports no runs, even though one was recorded
	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)
}

func TestRunClosesStoreOnFailure(t *testing.T) {
	cfg := mainConfig(t, filepath.Join(t.TempDir(), "absent.csv"))

	err := run(cfg, zerolog.Nop())
	require.Error(t, err)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)
}
