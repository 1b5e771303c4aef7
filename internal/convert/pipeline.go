// Package convert runs the rate-sheet conversion pipeline: scan the input
// for the provider's data section, project each row onto the canonical
// schema, and write the canonical CSV.
package convert

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/myoffe/rateconv/internal/config"
	"github.com/myoffe/rateconv/internal/csvio"
	"github.com/myoffe/rateconv/internal/model"
	"github.com/myoffe/rateconv/internal/provider"
)

// Run executes one conversion. The first malformed row aborts the run and
// the partial output is removed unless cfg.KeepPartial is set; a run never
// emits a file containing a subset of rows without failing loudly.
func Run(log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	start := time.Now()
	runID := uuid.New()

	// Resolve before any file I/O so a bad provider name never touches
	// the filesystem.
	prov, err := provider.ByName(cfg.Provider)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseResolve, Err: err}
	}

	log = log.With().
		Str("run_id", runID.String()).
		Str("provider", prov.Name).
		Logger()

	reader, err := csvio.Open(cfg.InputPath, prov.Delimiter)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseInput, Err: err}
	}
	defer reader.Close()

	writer, err := csvio.Create(cfg.OutputPath, cfg.Delimiter())
	if err != nil {
		return nil, &PipelineError{Phase: PhaseOutput, Err: err}
	}

	discard := func() {
		if cfg.KeepPartial {
			if err := writer.Close(); err != nil {
				log.Warn().Err(err).Msg("closing partial output failed (non-fatal)")
			}
			return
		}
		if err := writer.Discard(); err != nil {
			log.Warn().Err(err).Msg("removing partial output failed (non-fatal)")
		}
	}

	scanner := NewScanner(prov, reader, log)
	var converted int64

	for {
		row, record, scanErr := scanner.Next()
		if scanErr == io.EOF {
			break
		}
		if scanErr != nil {
			discard()
			return nil, &PipelineError{Phase: PhaseScan, Err: scanErr}
		}

		log.Debug().Int("record", record).Strs("row", row).Msg("processing row")

		canonical, tErr := prov.Transform(row)
		if tErr != nil {
			discard()
			return nil, &PipelineError{
				Phase: PhaseTransform,
				Err:   &MalformedRowError{Record: record, Row: row, Err: tErr},
			}
		}

		if wErr := writer.WriteRow(canonical); wErr != nil {
			discard()
			return nil, &PipelineError{Phase: PhaseWrite, Err: wErr}
		}
		converted++
	}

	if err := writer.Close(); err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}

	summary := &model.RunSummary{
		RunID:         runID.String(),
		Provider:      prov.Name,
		InputPath:     cfg.InputPath,
		OutputPath:    cfg.OutputPath,
		HeaderLine:    scanner.HeaderRecord(),
		RowsScanned:   scanner.Scanned(),
		RowsPreamble:  scanner.Preamble(),
		RowsConverted: converted,
		Duration:      time.Since(start),
	}

	log.Info().
		Int64("rows_preamble", summary.RowsPreamble).
		Int64("rows_scanned", summary.RowsScanned).
		Int64("rows_converted", summary.RowsConverted).
		Str("output", summary.OutputPath).
		Str("duration", summary.Duration.String()).
		Msg("conversion complete")

	return summary, nil
}
