package parser

import (
	"bytes"
	"errors"
)

// ErrNoDelimiter is returned when no candidate delimiter splits the sample
// into a consistent multi-field shape.
var ErrNoDelimiter = errors.New("no consistent delimiter found in sample")

// delimiterCandidates are tried in preference order on ties.
var delimiterCandidates = []byte{',', ';', '\t', '|'}

// Dialect describes how a delimited text file is encoded. It is inferred
// once from a bounded sample and treated as opaque by everything downstream.
type Dialect struct {
	Delimiter byte
	Quote     byte
}

// Detection is the combined result of dialect and header inference.
type Detection struct {
	Dialect   Dialect
	HasHeader bool
}

// Detect infers the dialect and header presence from sample, which should
// hold the leading bytes of the file.
func Detect(sample []byte) (Detection, error) {
	dialect, err := DetectDialect(sample)
	if err != nil {
		return Detection{}, err
	}
	return Detection{
		Dialect:   dialect,
		HasHeader: DetectHeader(sample, dialect),
	}, nil
}

// DetectDialect picks the delimiter whose per-line occurrence count is most
// consistent across the sampled lines, then infers the quote character.
// It fails with ErrNoDelimiter when no candidate yields a consistent
// multi-field split.
func DetectDialect(sample []byte) (Dialect, error) {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return Dialect{}, ErrNoDelimiter
	}

	delim, ok := detectDelimiter(lines)
	if !ok {
		return Dialect{}, ErrNoDelimiter
	}

	return Dialect{Delimiter: delim, Quote: detectQuote(sample, delim)}, nil
}

// sampleLines splits the sample into non-blank lines. Blank lines carry no
// delimiter signal and would only dilute the consistency scores.
func sampleLines(sample []byte) [][]byte {
	var lines [][]byte
	for _, line := range bytes.Split(sample, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// detectDelimiter scores each candidate by the modal per-line occurrence
// count and the fraction of lines hitting that mode. Thresholds relax from
// 0.9 down to 0.6 before giving up; earlier candidates win ties.
func detectDelimiter(lines [][]byte) (byte, bool) {
	type score struct {
		mode     int
		fraction float64
	}

	scores := make([]score, len(delimiterCandidates))
	for ci, cand := range delimiterCandidates {
		counts := make(map[int]int)
		for _, line := range lines {
			counts[bytes.Count(line, []byte{cand})]++
		}
		best := score{}
		for n, freq := range counts {
			f := float64(freq) / float64(len(lines))
			if f > best.fraction || (f == best.fraction && n > best.mode) {
				best = score{mode: n, fraction: f}
			}
		}
		scores[ci] = best
	}

	for _, threshold := range []float64{0.9, 0.8, 0.7, 0.6} {
		for ci, s := range scores {
			if s.mode >= 1 && s.fraction >= threshold {
				return delimiterCandidates[ci], true
			}
		}
	}
	return 0, false
}

// detectQuote counts quote characters adjacent to a delimiter or line
// boundary. '"' wins ties and is the fallback.
func detectQuote(sample []byte, delim byte) byte {
	doubles, singles := 0, 0
	for i := 0; i < len(sample); i++ {
		b := sample[i]
		if b != '"' && b != '\'' {
			continue
		}
		prev := byte('\n')
		if i > 0 {
			prev = sample[i-1]
		}
		next := byte('\n')
		if i+1 < len(sample) {
			next = sample[i+1]
		}
		if prev != delim && prev != '\n' && prev != '\r' &&
			next != delim && next != '\n' && next != '\r' {
			continue
		}
		if b == '"' {
			doubles++
		} else {
			singles++
		}
	}
	if singles > doubles {
		return '\''
	}
	return '"'
}
