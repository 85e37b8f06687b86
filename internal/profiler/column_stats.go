package profiler

import "strings"

// maxSampleValues bounds the per-column sample kept for display.
const maxSampleValues = 5

// columnStats accumulates one column's statistics during a scan. The unique
// set holds raw values, empty strings included, and grows without bound;
// finalize hands it off as a count and drops it.
type columnStats struct {
	name   string
	typ    ColumnType
	empty  int
	unique map[string]struct{}
	sample []string
}

func newColumnStats(name string) *columnStats {
	return &columnStats{
		name:   name,
		unique: make(map[string]struct{}),
		sample: make([]string, 0, maxSampleValues),
	}
}

// update folds one raw field value into the column. Uniqueness tracks the
// raw value, emptiness and typing look at the trimmed one, and the sample
// keeps the first non-empty raw values in encounter order.
func (s *columnStats) update(raw string) {
	s.unique[raw] = struct{}{}

	v := strings.TrimSpace(raw)
	if v == "" {
		s.empty++
		return
	}

	if len(s.sample) < maxSampleValues {
		s.sample = append(s.sample, raw)
	}
	s.typ = s.typ.observe(v)
}

// finalize converts the accumulated state into a display-ready ColumnStat
// and releases the unique set.
func (s *columnStats) finalize(rowCount int) ColumnStat {
	pct := 0.0
	if rowCount > 0 {
		pct = float64(s.empty) / float64(rowCount) * 100
	}
	stat := ColumnStat{
		Name:        s.name,
		Type:        s.typ,
		EmptyCount:  s.empty,
		EmptyPct:    pct,
		UniqueCount: len(s.unique),
		Sample:      s.sample,
	}
	s.unique = nil
	return stat
}
