package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanDestination trims and collapses internal whitespace. Excel-exported
// sheets pad destination names unevenly.
func CleanDestination(s string) string {
	s = strings.TrimSpace(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// NormalizePrefix concatenates the given cells into a dialing prefix,
// dropping interior spaces. The result must be all digits.
func NormalizePrefix(parts ...string) (string, error) {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(p), " ", ""))
	}
	prefix := b.String()
	if prefix == "" {
		return "", fmt.Errorf("empty prefix")
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("non-numeric prefix %q", prefix)
		}
	}
	return prefix, nil
}
