// Package csvio wraps encoding/csv with the loose settings provider rate
// sheets need: variable field counts, lazy quoting, per-provider delimiters.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Reader streams raw rows from a provider rate sheet.
type Reader struct {
	file   *os.File
	reader *csv.Reader
	record int
}

// Open opens a rate sheet for streaming with the given field delimiter.
func Open(path string, delimiter rune) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1 // preamble and footer rows vary in width
	r.LazyQuotes = true    // Excel exports are sloppy about quoting

	return &Reader{file: f, reader: r}, nil
}

// Next returns the next raw row, or io.EOF when the sheet is exhausted.
func (r *Reader) Next() ([]string, error) {
	row, err := r.reader.Read()
	if err != nil {
		return nil, err
	}
	r.record++
	return row, nil
}

// Record returns the 1-based number of the row most recently returned by
// Next. Multi-line quoted cells count as one record.
func (r *Reader) Record() int {
	return r.record
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
