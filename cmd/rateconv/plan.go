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

var planCmd = &cobra.Command{
	Use:   "plan <provider> <infile>",
	Short: "Dry-run a sheet: report what a conversion would do, without writing",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg.Provider, cfg.InputPath = args[0], args[1]
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)

	report, err := convert.Plan(log, &cfg)
	if err != nil {
		var pe *convert.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("plan failed")
			os.Exit(exitCodeFor(pe.Phase))
		}
		log.Error().Err(err).Msg("plan failed")
		os.Exit(exitcode.ScanError)
	}

	fmt.Println("=== rateconv plan ===")
	fmt.Printf("Provider:   %s\n", report.Provider)
	fmt.Printf("File:       %s\n", report.InputPath)
	fmt.Printf("SHA-256:    %s\n", report.FileSHA256)
	fmt.Printf("Header at:  record %d (%d preamble rows skipped)\n", report.HeaderRecord, report.RowsPreamble)
	fmt.Printf("Data rows:  %d (%d convertible, %d malformed)\n", report.RowsData, report.RowsOK, len(report.Malformed))

	if len(report.Malformed) > 0 {
		fmt.Println()
		fmt.Println("Malformed rows:")
		for _, m := range report.Malformed {
			fmt.Printf("  record %d: %v\n", m.Record, m.Err)
		}
		os.Exit(exitcode.RowError)
	}

	fmt.Println("\nSheet is convertible.")
	return nil
}
