package convert

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/myoffe/rateconv/internal/csvio"
	"github.com/myoffe/rateconv/internal/provider"
)

// Scanner yields the data rows of one provider sheet, skipping the
// Excel-export preamble before the header and stopping at the footer.
type Scanner struct {
	prov *provider.Provider
	r    *csvio.Reader
	log  zerolog.Logger

	headerRecord int
	preamble     int64
	scanned      int64
	inData       bool
	done         bool
}

// NewScanner wraps an open reader for the given provider.
func NewScanner(prov *provider.Provider, r *csvio.Reader, log zerolog.Logger) *Scanner {
	return &Scanner{prov: prov, r: r, log: log}
}

// Next returns the next data row and its record number. It returns io.EOF
// once the data section ends, and ErrDataNotFound when a non-empty sheet
// contains no header row. A sheet with zero records is treated as empty,
// not malformed.
func (s *Scanner) Next() ([]string, int, error) {
	if s.done {
		return nil, 0, io.EOF
	}

	for !s.inData {
		row, err := s.r.Next()
		if err == io.EOF {
			s.done = true
			if s.r.Record() == 0 {
				return nil, 0, io.EOF
			}
			return nil, 0, ErrDataNotFound
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read record %d: %w", s.r.Record()+1, err)
		}
		if s.prov.IsHeader(row) {
			s.inData = true
			s.headerRecord = s.r.Record()
			s.log.Info().Int("record", s.headerRecord).Msg("found data header")
			break
		}
		s.preamble++
		s.log.Debug().Int("record", s.r.Record()).Strs("row", row).Msg("skipping preamble")
	}

	row, err := s.r.Next()
	if err == io.EOF {
		s.done = true
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read record %d: %w", s.r.Record()+1, err)
	}
	if !s.prov.HasData(row) {
		s.done = true
		s.log.Info().Int("record", s.r.Record()).Msg("end of data")
		return nil, 0, io.EOF
	}
	s.scanned++
	return row, s.r.Record(), nil
}

// HeaderRecord returns the record number of the matched header row, or 0 if
// none was seen.
func (s *Scanner) HeaderRecord() int {
	return s.headerRecord
}

// Preamble returns the number of records skipped before the header.
func (s *Scanner) Preamble() int64 {
	return s.preamble
}

// Scanned returns the number of data rows yielded so far.
func (s *Scanner) Scanned() int64 {
	return s.scanned
}
