// Package provider defines the per-carrier mapping from raw rate-sheet rows
// to the canonical schema. Each provider is a pure mapping: no state is
// shared between rows or runs.
package provider

import (
	"fmt"
	"strings"

	"github.com/myoffe/rateconv/internal/model"
)

// Provider describes one carrier's rate-sheet layout and how to project its
// rows onto the canonical schema.
type Provider struct {
	Name      string
	Delimiter rune   // input field delimiter
	Quirks    string // one-line layout summary for `rateconv providers`

	// IsHeader reports whether row is the column-header line that
	// immediately precedes the rate data. Everything before it is
	// Excel-export preamble and is skipped.
	IsHeader func(row []string) bool

	// HasData reports whether row is still part of the data body. The
	// first row for which this is false ends the sheet; what follows is
	// footer junk.
	HasData func(row []string) bool

	// Transform maps one raw data row to a canonical row.
	Transform func(row []string) (*model.Row, error)
}

// All lists the supported providers in canonical order.
var All = []*Provider{Vodafone, TMobile, Sprint}

// UnknownProviderError reports a provider name outside the supported set.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q (supported: %s)", e.Name, strings.Join(Names(), ", "))
}

// Names returns the supported provider names in canonical order.
func Names() []string {
	names := make([]string, len(All))
	for i, p := range All {
		names[i] = p.Name
	}
	return names
}

// ByName resolves a provider by case-insensitive name. Callers must resolve
// before touching any file so that a bad name never produces I/O.
func ByName(name string) (*Provider, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range All {
		if p.Name == lower {
			return p, nil
		}
	}
	return nil, &UnknownProviderError{Name: name}
}

// countEmpty returns the number of empty cells in row. Vodafone and T-Mobile
// sheets mark their footer by rows that are mostly blank.
func countEmpty(row []string) int {
	n := 0
	for _, cell := range row {
		if cell == "" {
			n++
		}
	}
	return n
}
