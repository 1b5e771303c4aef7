package model

import "time"

// RunSummary captures metrics from a single conversion run.
type RunSummary struct {
	RunID         string
	Provider      string
	InputPath     string
	OutputPath    string
	HeaderLine    int
	RowsScanned   int64
	RowsPreamble  int64
	RowsConverted int64
	Duration      time.Duration
}
