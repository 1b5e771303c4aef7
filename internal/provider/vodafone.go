package provider

import (
	"fmt"
	"strings"

	"github.com/myoffe/rateconv/internal/model"
	"github.com/myoffe/rateconv/internal/normalize"
)

// Vodafone sheets are comma-delimited with GBP rates. Dates look like
// "02-Jan-2021". Destination is split across country and destination
// columns; the dialing prefix across country code and area code columns.
var Vodafone = &Provider{
	Name:      "vodafone",
	Delimiter: ',',
	Quirks:    "comma-delimited, dates 02-Jan-2006, prefix split across two columns",
	IsHeader: func(row []string) bool {
		return len(row) >= 2 &&
			strings.EqualFold(row[0], "country") &&
			strings.EqualFold(row[1], "destination")
	},
	HasData: func(row []string) bool {
		return countEmpty(row) < 4
	},
	Transform: vodafoneTransform,
}

const vodafoneDateLayout = "2-Jan-2006"

func vodafoneTransform(row []string) (*model.Row, error) {
	if len(row) < 9 {
		return nil, fmt.Errorf("expected at least 9 fields, got %d", len(row))
	}

	prefix, err := normalize.NormalizePrefix(row[3], row[4])
	if err != nil {
		return nil, err
	}
	rate, err := normalize.ParseRate(row[5])
	if err != nil {
		return nil, err
	}
	date, err := normalize.ReformatDate(row[6], vodafoneDateLayout)
	if err != nil {
		return nil, err
	}

	return &model.Row{
		Destination:   normalize.CleanDestination(row[0]) + "-" + normalize.CleanDestination(row[1]),
		Prefix:        prefix,
		Rate:          rate,
		EffectiveDate: date,
		Change:        normalize.ChangeFromComment(row[8]),
	}, nil
}
