package provider

import (
	"fmt"
	"strings"

	"github.com/myoffe/rateconv/internal/model"
	"github.com/myoffe/rateconv/internal/normalize"
)

// Sprint sheets are tab-delimited. The header is a "----" separator line and
// data rows have exactly six fields. Dates look like "Jan  2 2021" with
// ragged spacing.
var Sprint = &Provider{
	Name:      "sprint",
	Delimiter: '\t',
	Quirks:    "tab-delimited, ---- separator before data, dates Jan 2 2006, exactly 6 fields per row",
	IsHeader: func(row []string) bool {
		return len(row) >= 1 && strings.Contains(row[0], "----")
	},
	HasData: func(row []string) bool {
		return len(row) == 6
	},
	Transform: sprintTransform,
}

const sprintDateLayout = "Jan 2 2006"

func sprintTransform(row []string) (*model.Row, error) {
	if len(row) != 6 {
		return nil, fmt.Errorf("expected exactly 6 fields, got %d", len(row))
	}

	prefix, err := normalize.NormalizePrefix(row[1])
	if err != nil {
		return nil, err
	}
	rate, err := normalize.ParseRate(row[2])
	if err != nil {
		return nil, err
	}
	date, err := normalize.ReformatDate(normalize.CollapseWhitespace(row[5]), sprintDateLayout)
	if err != nil {
		return nil, err
	}

	return &model.Row{
		Destination:   normalize.CleanDestination(row[0]),
		Prefix:        prefix,
		Rate:          rate,
		EffectiveDate: date,
		Change:        model.RateUnchanged,
	}, nil
}
