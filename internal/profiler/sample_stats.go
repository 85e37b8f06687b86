package profiler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/quadboy321/CSV-Analyzer/internal/parser"
)

// NumericSummary reduces the numeric-looking values of a column's sample.
// At most five values feed it, so it characterizes the sample rather than
// the whole column.
type NumericSummary struct {
	Min float64
	Max float64
	Avg float64
}

// SummarizeNumeric filters the sample through the numeric rule and reduces
// what passes. ok is false when nothing qualifies.
func SummarizeNumeric(col ColumnStat) (summary NumericSummary, ok bool) {
	var vals []float64
	for _, raw := range col.Sample {
		v := strings.TrimSpace(raw)
		if !parser.LooksNumeric(v) {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return NumericSummary{}, false
	}

	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	avg, _ := stats.Mean(vals)
	return NumericSummary{Min: min, Max: max, Avg: avg}, true
}

// ListValues returns a sorted copy of the sample for display.
func ListValues(col ColumnStat) []string {
	out := make([]string, len(col.Sample))
	copy(out, col.Sample)
	sort.Strings(out)
	return out
}
