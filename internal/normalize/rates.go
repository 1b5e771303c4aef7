package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dollarRate = regexp.MustCompile(`\$\s*(\d+\.\d+)`)

// currencySymbols are stripped from rate cells before numeric parsing.
const currencySymbols = "$£€"

// ParseRate coerces a raw rate cell into a canonical decimal string.
// Currency symbols and whitespace are stripped; the remainder must parse
// as a number.
func ParseRate(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeftFunc(cleaned, func(r rune) bool {
		return strings.ContainsRune(currencySymbols, r)
	})
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", fmt.Errorf("empty rate")
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", fmt.Errorf("non-numeric rate %q", s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// ExtractDollarRate pulls a decimal rate out of a cell like "$ 0.05 /min".
// T-Mobile sheets embed the rate in free text.
func ExtractDollarRate(s string) (string, error) {
	m := dollarRate.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("no dollar rate in %q", s)
	}
	return m[1], nil
}
