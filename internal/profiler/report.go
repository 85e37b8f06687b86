package profiler

// ColumnStat is the finalized profile of one column. Sample holds at most
// the first five non-empty raw values in encounter order, so anything
// derived from it describes the sample, not the whole column.
type ColumnStat struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	EmptyCount  int        `json:"empty_count"`
	EmptyPct    float64    `json:"empty_pct"`
	UniqueCount int        `json:"unique_count"`
	Sample      []string   `json:"sample"`
}

// Report is the result of analyzing one file. Columns aligns with Headers
// by index. Nothing mutates a Report after Analyze returns it.
type Report struct {
	FileName string       `json:"file_name"`
	Headers  []string     `json:"headers"`
	RowCount int          `json:"row_count"`
	Columns  []ColumnStat `json:"columns"`
}

// EmptyRate returns the share of empty cells across the whole file, in
// percent. Zero when the file has no cells.
func (r *Report) EmptyRate() float64 {
	cells := r.RowCount * len(r.Columns)
	if cells == 0 {
		return 0
	}
	empty := 0
	for _, col := range r.Columns {
		empty += col.EmptyCount
	}
	return float64(empty) / float64(cells) * 100
}
