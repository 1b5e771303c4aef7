package provider

import (
	"fmt"
	"strings"

	"github.com/myoffe/rateconv/internal/model"
	"github.com/myoffe/rateconv/internal/normalize"
)

// TMobile sheets are comma-delimited with the rate buried in free text like
// "$ 0.05 per minute". Dates look like "01/02/2021".
var TMobile = &Provider{
	Name:      "tmobile",
	Delimiter: ',',
	Quirks:    "comma-delimited, dates 01/02/2006, rate embedded in text ($ 0.05)",
	IsHeader: func(row []string) bool {
		return len(row) >= 3 &&
			strings.Contains(strings.ToLower(row[0]), "destination") &&
			strings.Contains(strings.ToLower(row[2]), "code")
	},
	HasData: func(row []string) bool {
		return countEmpty(row) < 4
	},
	Transform: tmobileTransform,
}

const tmobileDateLayout = "1/2/2006"

func tmobileTransform(row []string) (*model.Row, error) {
	if len(row) < 8 {
		return nil, fmt.Errorf("expected at least 8 fields, got %d", len(row))
	}

	prefix, err := normalize.NormalizePrefix(row[2])
	if err != nil {
		return nil, err
	}
	rate, err := normalize.ExtractDollarRate(row[5])
	if err != nil {
		return nil, err
	}
	date, err := normalize.ReformatDate(row[6], tmobileDateLayout)
	if err != nil {
		return nil, err
	}

	return &model.Row{
		Destination:   normalize.CleanDestination(row[0]),
		Prefix:        prefix,
		Rate:          rate,
		EffectiveDate: date,
		Change:        normalize.ChangeFromComment(row[7]),
	}, nil
}
