package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/isacmj7/stroke-prediction-analysis/internal/config"
	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
	"github.com/isacmj7/stroke-prediction-analysis/internal/export"
	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
	"github.com/isacmj7/stroke-prediction-analysis/internal/store"
)

// Run executes the full load → clean → aggregate → export procedure as a
// single-threaded, fail-fast batch. The first error aborts the run; the
// run-history store only observes and never fails the analysis.
func Run(ctx context.Context, cfg config.Config, log zerolog.Logger) (*model.RunSummary, error) {
	opts, err := cleanOptions(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	storeWarn(log, store.SaveRun(runID, cfg.InputPath))

	fail := func(stage string, err error) (*model.RunSummary, error) {
		storeWarn(log, store.SaveRunError(runID, err))
		storeWarn(log, store.UpdateRunStatus(runID, "failed"))
		return nil, fmt.Errorf("%s stage failed: %w", stage, err)
	}
	recordStage := func(stage string, stageStart time.Time, records int) {
		end := time.Now()
		storeWarn(log, store.SaveStageProgress(runID, stage, "completed", &stageStart, &end, records))
		log.Info().Str("stage", stage).Int("records", records).
			Dur("took", end.Sub(stageStart)).Msg("stage completed")
	}

	// --- LOAD ---
	if err := ctx.Err(); err != nil {
		return fail("load", err)
	}
	stageStart := time.Now()
	records, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return fail("load", err)
	}
	recordStage("load", stageStart, len(records))

	// --- CLEAN ---
	if err := ctx.Err(); err != nil {
		return fail("clean", err)
	}
	stageStart = time.Now()
	cleaned := dataset.Categorize(dataset.Clean(records, opts))
	recordStage("clean", stageStart, len(cleaned))

	// --- AGGREGATE ---
	if err := ctx.Err(); err != nil {
		return fail("aggregate", err)
	}
	stageStart = time.Now()
	tables := AggregateAll(cleaned)
	stats := Overall(cleaned)
	corr := Correlations(cleaned)
	recordStage("aggregate", stageStart, len(tables))

	// --- EXPORT ---
	if err := ctx.Err(); err != nil {
		return fail("export", err)
	}
	stageStart = time.Now()
	writer := export.NewWriter(cfg.OutputDir)

	tableCount := 0
	for _, dim := range Dimensions() {
		path, err := writer.WriteTable(tables[dim.Name])
		if err != nil {
			return fail("export", err)
		}
		storeWarn(log, store.SaveArtifact(runID, "table", path, len(tables[dim.Name].Rows)))
		tableCount++
	}

	datasetPath, err := writer.WriteDataset(cleaned)
	if err != nil {
		return fail("export", err)
	}
	storeWarn(log, store.SaveArtifact(runID, "dataset", datasetPath, len(cleaned)))

	chartPaths, err := writer.RenderCharts(cleaned, tables, stats, corr, displayLabels())
	if err != nil {
		return fail("export", err)
	}
	for _, path := range chartPaths {
		storeWarn(log, store.SaveArtifact(runID, "chart", path, 0))
	}
	recordStage("export", stageStart, tableCount+len(chartPaths)+1)

	storeWarn(log, store.UpdateRunStatus(runID, "completed"))

	return &model.RunSummary{
		RunID:         runID,
		InputPath:     cfg.InputPath,
		RecordsLoaded: len(records),
		Patients:      len(cleaned),
		Stats:         stats,
		TablesWritten: tableCount,
		ChartsWritten: len(chartPaths),
		Duration:      time.Since(start),
	}, nil
}

func cleanOptions(cfg config.Config) (dataset.CleanOptions, error) {
	opts := dataset.CleanOptions{DropOtherGender: cfg.DropOtherGender}
	switch cfg.ImputeBMI {
	case "", "median":
		opts.ImputeBMIMedian = true
	case "none":
	default:
		return opts, fmt.Errorf("unknown bmi imputation policy %q", cfg.ImputeBMI)
	}
	return opts, nil
}

// displayLabels collects per-dimension chart label overrides.
func displayLabels() map[string]map[string]string {
	labels := make(map[string]map[string]string)
	for _, dim := range Dimensions() {
		if dim.Display != nil {
			labels[dim.Name] = dim.Display
		}
	}
	return labels
}

func storeWarn(log zerolog.Logger, err error) {
	if err != nil {
		log.Warn().Err(err).Msg("run-history write failed")
	}
}
