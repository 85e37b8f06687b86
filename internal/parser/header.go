package parser

import (
	"bytes"
	"strings"
)

// headerSampleRows caps how many sampled records feed the header vote.
const headerSampleRows = 20

// LooksNumeric reports whether v reads as a plain decimal number: after
// removing at most one '.', every remaining character must be an ASCII
// digit. Signs, exponents, spaces, and multi-dot strings all fail.
func LooksNumeric(v string) bool {
	v = strings.Replace(v, ".", "", 1)
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

// DetectHeader reports whether the first sampled row looks like a header.
// Each column votes by comparing the first row's value against the pattern
// of the rows beneath it: numeric columns expect a number there, columns
// with a consistent value length expect that length. A positive vote total
// declares a header. Fewer than two parseable rows means no header.
func DetectHeader(sample []byte, d Dialect) bool {
	rows := readSampleRows(sample, d, headerSampleRows)
	if len(rows) < 2 {
		return false
	}

	first, body := rows[0], rows[1:]
	votes := 0
	for col, raw := range first {
		numeric, length, seen := columnPattern(body, col)
		if seen == 0 {
			continue
		}
		v := strings.TrimSpace(raw)
		switch {
		case numeric:
			if LooksNumeric(v) {
				votes--
			} else {
				votes++
			}
		case length >= 0:
			if len(v) != length {
				votes++
			} else {
				votes--
			}
		}
	}
	return votes > 0
}

// columnPattern classifies column col across the body rows: numeric when
// every non-empty value passes LooksNumeric, otherwise a shared length when
// all non-empty values agree on one (-1 when they do not). seen counts the
// non-empty values considered.
func columnPattern(body [][]string, col int) (numeric bool, length int, seen int) {
	numeric = true
	length = -1
	sameLength := true
	for _, row := range body {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		seen++
		if !LooksNumeric(v) {
			numeric = false
		}
		if length == -1 {
			length = len(v)
		} else if len(v) != length {
			sameLength = false
		}
	}
	if seen == 0 {
		return false, -1, 0
	}
	if numeric || !sameLength {
		length = -1
	}
	return numeric, length, seen
}

// readSampleRows parses up to limit records from the sample with the given
// dialect. Parsing stops quietly at the first malformed record; the full
// scan surfaces that error with its position.
func readSampleRows(sample []byte, d Dialect, limit int) [][]string {
	sc := NewScanner(bytes.NewReader(sample), d)
	var rows [][]string
	for len(rows) < limit {
		rec, err := sc.Read()
		if err != nil {
			break
		}
		rows = append(rows, rec)
	}
	return rows
}
