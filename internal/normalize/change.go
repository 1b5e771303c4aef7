package normalize

import (
	"strings"

	"github.com/myoffe/rateconv/internal/model"
)

// ChangeFromComment derives the rate change indicator from a provider's
// free-text comment cell.
func ChangeFromComment(comment string) string {
	c := strings.ToLower(comment)
	switch {
	case strings.Contains(c, "increase"):
		return model.RateIncreased
	case strings.Contains(c, "decrease"):
		return model.RateDecreased
	default:
		return model.RateUnchanged
	}
}
