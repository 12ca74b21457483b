package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/config"
	"github.com/isacmj7/stroke-prediction-analysis/internal/store"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stdout })).
		With().Timestamp().Logger()
	if cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			log = log.Level(level)
		}
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("analysis run failed")
		os.Exit(1)
	}
}

// run executes one analysis pass and returns instead of exiting, so
// the run-history store is closed on failure paths as well.
func run(cfg config.Config, log zerolog.Logger) error {
	if cfg.DBPath != "" {
		if err := store.InitDB(cfg.DBPath); err != nil {
			return fmt.Errorf("open run-history store %s: %w", cfg.DBPath, err)
		}
		defer store.Close()
	}

	summary, err := analysis.Run(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	log.Info().
		Int("patients", summary.Patients).
		Int("stroke_cases", summary.Stats.StrokeCases).
		Float64("stroke_rate", summary.Stats.StrokeRate).
		Int("tables", summary.TablesWritten).
		Int("charts", summary.ChartsWritten).
		Dur("took", summary.Duration).
		Msg("analysis complete")
	return nil
}
