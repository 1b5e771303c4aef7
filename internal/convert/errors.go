package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Pipeline phases, used for exit code mapping.
const (
	PhaseResolve   = "resolve"
	PhaseInput     = "input"
	PhaseScan      = "scan"
	PhaseTransform = "transform"
	PhaseOutput    = "output"
	PhaseWrite     = "write"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ErrDataNotFound means the sheet had content but the provider's header row
// never appeared, so no data section could be located.
var ErrDataNotFound = errors.New("no rate data header found in input")

// MalformedRowError reports a data row that failed projection onto the
// canonical schema.
type MalformedRowError struct {
	Record int // 1-based record number in the input file
	Row    []string
	Err    error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at record %d (%s): %s",
		e.Record, strings.Join(e.Row, ","), e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
