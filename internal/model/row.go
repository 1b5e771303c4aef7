package model

// SchemaVersion identifies the canonical output schema. Bump whenever the
// field set or order below changes; downstream loaders key on it.
const SchemaVersion = 1

// Rate change indicators carried in the "change" column.
const (
	RateUnchanged = "="
	RateIncreased = "+"
	RateDecreased = "-"
)

// DateFormat is the effective-date layout in the canonical schema.
const DateFormat = "20060102"

// Row is the normalized, DB-ready representation of a single rate line.
// All providers converge on this shape; the rate is kept as a decimal
// string with currency symbols stripped.
type Row struct {
	Destination   string
	Prefix        string
	Rate          string
	EffectiveDate string // YYYYMMDD
	Change        string // "=", "+" or "-"
}

// Header returns the ordered canonical column names, written as the first
// line of every output file.
func Header() []string {
	return []string{
		"destination",
		"prefix",
		"rate",
		"effective_date",
		"change",
	}
}

// Fields returns the row values in the same order as Header(), suitable for
// encoding/csv.
func (r *Row) Fields() []string {
	return []string{
		r.Destination,
		r.Prefix,
		r.Rate,
		r.EffectiveDate,
		r.Change,
	}
}
