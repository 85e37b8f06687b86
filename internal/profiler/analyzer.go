package profiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oleg578/swiftcsv"

	"github.com/quadboy321/CSV-Analyzer/internal/parser"
)

// DefaultDetectBytes is how much of the file feeds format detection.
const DefaultDetectBytes = 10240

// HeaderMode controls header handling for an analysis.
type HeaderMode uint8

const (
	HeaderAuto HeaderMode = iota // infer from the sample
	HeaderOn                     // first row is a header
	HeaderOff                    // every row is data
)

// Options tune an Analyzer. The zero value means full auto-detection with
// the default sample size.
type Options struct {
	// DetectBytes bounds the detection sample; <= 0 means DefaultDetectBytes.
	DetectBytes int
	// Delimiter, when non-zero, skips delimiter inference.
	Delimiter byte
	// Header overrides header inference.
	Header HeaderMode
}

// Analyzer profiles delimited text files. Each analysis opens the file
// twice, once for a bounded detection read and once for the full scan, and
// releases each handle before moving on. A single analysis is strictly
// sequential; an Analyzer may serve many analyses concurrently since it
// holds no per-file state.
type Analyzer struct {
	opts Options
}

func NewAnalyzer(opts Options) *Analyzer {
	if opts.DetectBytes <= 0 {
		opts.DetectBytes = DefaultDetectBytes
	}
	return &Analyzer{opts: opts}
}

// Analyze profiles the file at path with default options. Failures wrap
// ErrFileNotFound, ErrFormatDetection, ErrParse, or ErrRead.
func Analyze(path string) (*Report, error) {
	return NewAnalyzer(Options{}).Analyze(path)
}

func (a *Analyzer) Analyze(path string) (*Report, error) {
	sample, err := a.readSample(path)
	if err != nil {
		return nil, err
	}

	det, err := a.detect(sample)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormatDetection, err)
	}

	return a.scan(path, det)
}

// readSample reads up to DetectBytes through its own file handle. When the
// buffer fills completely the file may continue past it, so the trailing
// partial line is cut to keep a truncated record out of detection.
func (a *Analyzer) readSample(path string) ([]byte, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, a.opts.DetectBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	sample := buf[:n]

	if n == a.opts.DetectBytes {
		if i := bytes.LastIndexByte(sample, '\n'); i >= 0 {
			sample = sample[:i+1]
		}
	}
	return sample, nil
}

// detect resolves the dialect and header presence, honoring overrides. An
// explicit delimiter skips inference entirely, so files the sniffer would
// reject, single-column ones for instance, can still be profiled.
func (a *Analyzer) detect(sample []byte) (parser.Detection, error) {
	var det parser.Detection

	if a.opts.Delimiter != 0 {
		det.Dialect = parser.Dialect{Delimiter: a.opts.Delimiter, Quote: '"'}
	} else {
		d, err := parser.DetectDialect(sample)
		if err != nil {
			return det, err
		}
		det.Dialect = d
	}

	switch a.opts.Header {
	case HeaderOn:
		det.HasHeader = true
	case HeaderOff:
		det.HasHeader = false
	default:
		det.HasHeader = parser.DetectHeader(sample, det.Dialect)
	}
	return det, nil
}

// scan is the full sequential pass: resolve column names from the first
// record, then stream every data row through the column accumulators.
// Fields beyond the known columns are dropped; short rows leave the
// trailing columns untouched.
func (a *Analyzer) scan(path string, det parser.Detection) (*Report, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := parser.NewScanner(f, det.Dialect)
	report := &Report{FileName: filepath.Base(path)}

	first, err := sc.Read()
	if err == io.EOF {
		report.Headers = []string{}
		report.Columns = []ColumnStat{}
		return report, nil
	}
	if err != nil {
		return nil, wrapScanErr(err)
	}

	var headers []string
	if det.HasHeader {
		headers = first
	} else {
		headers = syntheticHeaders(len(first))
	}

	cols := make([]*columnStats, len(headers))
	for i, name := range headers {
		cols[i] = newColumnStats(name)
	}

	rowCount := 0
	observe := func(row []string) {
		rowCount++
		for i, value := range row {
			if i >= len(cols) {
				break
			}
			cols[i].update(value)
		}
	}

	if !det.HasHeader {
		observe(first)
	}
	for {
		row, err := sc.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapScanErr(err)
		}
		observe(row)
	}

	report.Headers = headers
	report.RowCount = rowCount
	report.Columns = make([]ColumnStat, len(cols))
	for i, col := range cols {
		report.Columns[i] = col.finalize(rowCount)
	}
	return report, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return f, nil
}

// wrapScanErr classifies a mid-scan failure: quoting violations are parse
// failures, everything else is I/O.
func wrapScanErr(err error) error {
	var pe *swiftcsv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fmt.Errorf("%w: %v", ErrRead, err)
}

func syntheticHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column %d", i+1)
	}
	return headers
}
