package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/myoffe/rateconv/internal/model"
)

// ReformatDate parses a provider date string in sourceLayout and renders it
// in the canonical YYYYMMDD form. Provider rate sheets disagree on date
// encoding, so the layout is part of each provider's mapping rather than
// guessed from the value.
func ReformatDate(s, sourceLayout string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	t, err := time.Parse(sourceLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format(model.DateFormat), nil
}

// CollapseWhitespace joins runs of whitespace with single spaces so ragged
// dates like "Jan  2 2021" parse against a fixed layout. Underscores are no
// good as the joiner: "_2" is the space-padded-day token in a Go layout.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
