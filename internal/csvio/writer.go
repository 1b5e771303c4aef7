package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/myoffe/rateconv/internal/model"
)

// Writer serializes canonical rows. Quoting follows RFC 4180: fields
// containing the delimiter, quotes or line breaks are quoted by encoding/csv.
type Writer struct {
	file   *os.File
	writer *csv.Writer
	path   string
}

// Create opens the output path for writing and emits the canonical header
// as the first line.
func Create(path string, delimiter rune) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = delimiter

	if err := w.Write(model.Header()); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Writer{file: f, writer: w, path: path}, nil
}

// WriteRow serializes one canonical row.
func (w *Writer) WriteRow(row *model.Row) error {
	if err := w.writer.Write(row.Fields()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and releases the file, reporting any deferred
// write error.
func (w *Writer) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return w.file.Close()
}

// Discard closes the writer and removes the partial output file. Used when
// a run aborts mid-way so a broken file is not left behind.
func (w *Writer) Discard() error {
	w.file.Close()
	return os.Remove(w.path)
}
