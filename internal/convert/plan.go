package convert

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/myoffe/rateconv/internal/config"
	"github.com/myoffe/rateconv/internal/csvio"
	"github.com/myoffe/rateconv/internal/normalize"
	"github.com/myoffe/rateconv/internal/provider"
)

// PlanReport summarizes a dry run over an input sheet.
type PlanReport struct {
	Provider     string
	InputPath    string
	FileSHA256   string
	HeaderRecord int
	RowsPreamble int64
	RowsData     int64
	RowsOK       int64
	Malformed    []*MalformedRowError
}

// Plan scans and transforms without writing anything. Unlike Run it does not
// stop at the first malformed row: the report lists every row that would
// fail, so a sheet can be fixed in one pass.
func Plan(log zerolog.Logger, cfg *config.Config) (*PlanReport, error) {
	prov, err := provider.ByName(cfg.Provider)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseResolve, Err: err}
	}

	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseInput, Err: err}
	}

	reader, err := csvio.Open(cfg.InputPath, prov.Delimiter)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseInput, Err: err}
	}
	defer reader.Close()

	report := &PlanReport{
		Provider:   prov.Name,
		InputPath:  cfg.InputPath,
		FileSHA256: sha,
	}

	scanner := NewScanner(prov, reader, log)
	for {
		row, record, scanErr := scanner.Next()
		if scanErr == io.EOF {
			break
		}
		if scanErr != nil {
			return nil, &PipelineError{Phase: PhaseScan, Err: scanErr}
		}

		report.RowsData++
		if _, tErr := prov.Transform(row); tErr != nil {
			report.Malformed = append(report.Malformed,
				&MalformedRowError{Record: record, Row: row, Err: tErr})
			continue
		}
		report.RowsOK++
	}

	report.HeaderRecord = scanner.HeaderRecord()
	report.RowsPreamble = scanner.Preamble()
	return report, nil
}
