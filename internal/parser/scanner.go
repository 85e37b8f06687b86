package parser

import (
	"errors"
	"io"

	"github.com/oleg578/swiftcsv"
)

// Scanner streams records from delimited text using a detected dialect.
// Field-count drift between records is not an error here: ragged records
// come back with exactly the fields they have, and what to do with them is
// the caller's decision. Blank lines come back as zero-field records so the
// caller can count them without touching any column.
type Scanner struct {
	r *swiftcsv.Reader
}

// NewScanner wraps r with a reader configured for d. Zero dialect fields
// keep the reader's defaults (comma, double quote).
func NewScanner(r io.Reader, d Dialect) *Scanner {
	cr := swiftcsv.NewReader(r)
	if d.Delimiter != 0 {
		cr.Comma = d.Delimiter
	}
	if d.Quote != 0 {
		cr.Quote = d.Quote
	}
	return &Scanner{r: cr}
}

// Read returns the next record, io.EOF at end of input, or a
// *swiftcsv.ParseError when a record violates the dialect's quoting rules.
func (s *Scanner) Read() ([]string, error) {
	rec, err := s.r.Read()
	if err != nil && !errors.Is(err, swiftcsv.ErrorFieldCount) {
		return nil, err
	}
	if len(rec) == 1 && rec[0] == "" {
		return []string{}, nil
	}
	return rec, nil
}
