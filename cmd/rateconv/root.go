package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/myoffe/rateconv/internal/config"
	"github.com/myoffe/rateconv/internal/exitcode"
)

var cfg config.Config
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rateconv",
	Short: "Provider rate sheet CSV → canonical CSV converter",
	Long:  "Converts telecom provider call-rate CSV exports (saved from the provider's XLS) into the single canonical CSV schema used for database ingestion.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every skipped and processed row")
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
