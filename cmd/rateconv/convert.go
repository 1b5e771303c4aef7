package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myoffe/rateconv/internal/convert"
	"github.com/myoffe/rateconv/internal/exitcode"
	"github.com/myoffe/rateconv/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert <provider> <infile> <outfile>",
	Short: "Convert a provider rate sheet to the canonical CSV",
	Args:  cobra.ExactArgs(3),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&cfg.OutputDelimiter, "output-delimiter", "", `Output field delimiter (default ","; the legacy DB loader uses "|")`)
	f.BoolVar(&cfg.KeepPartial, "keep-partial", false, "Keep the partial output file when a run aborts on a malformed row")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg.Provider, cfg.InputPath, cfg.OutputPath = args[0], args[1], args[2]
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := convert.Run(log, &cfg)
	if err != nil {
		var mErr *convert.MalformedRowError
		if errors.As(err, &mErr) {
			log.Error().
				Int("record", mErr.Record).
				Strs("row", mErr.Row).
				Err(mErr.Err).
				Msg("malformed row, conversion aborted")
		}
		var pe *convert.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("conversion failed")
			os.Exit(exitCodeFor(pe.Phase))
		}
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(exitcode.RowError)
	}

	fmt.Printf("Converted %d rows to %s (%.1fs)\n",
		summary.RowsConverted, summary.OutputPath, summary.Duration.Seconds())
	return nil
}

// exitCodeFor maps a pipeline phase to a process exit code.
func exitCodeFor(phase string) int {
	switch phase {
	case convert.PhaseResolve:
		return exitcode.UsageError
	case convert.PhaseInput:
		return exitcode.InputError
	case convert.PhaseOutput, convert.PhaseWrite:
		return exitcode.OutputError
	case convert.PhaseScan:
		return exitcode.ScanError
	default:
		return exitcode.RowError
	}
}
