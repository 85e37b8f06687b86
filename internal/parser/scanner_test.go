package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/oleg578/swiftcsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllRecords(t *testing.T, input string, d Dialect) [][]string {
	t.Helper()
	sc := NewScanner(strings.NewReader(input), d)
	var records [][]string
	for {
		rec, err := sc.Read()
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestScannerReadsRecords(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "a,b\n1,2\n", Dialect{Delimiter: ',', Quote: '"'})
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, records)
}

func TestScannerToleratesRaggedRecords(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "a,b,c\n1,2\n1,2,3,4\n", Dialect{Delimiter: ',', Quote: '"'})
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "2"},
		{"1", "2", "3", "4"},
	}, records)
}

func TestScannerBlankLineIsZeroFieldRecord(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "a,b\n\n1,2\n", Dialect{Delimiter: ',', Quote: '"'})
	require.Len(t, records, 3)
	assert.Empty(t, records[1])
}

func TestScannerCustomDialect(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "x;'a;b'\n1;2\n", Dialect{Delimiter: ';', Quote: '\''})
	assert.Equal(t, [][]string{{"x", "a;b"}, {"1", "2"}}, records)
}

func TestScannerQuotedFieldWithDelimiter(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "name,note\nalice,\"x, y\"\n", Dialect{Delimiter: ',', Quote: '"'})
	assert.Equal(t, [][]string{{"name", "note"}, {"alice", "x, y"}}, records)
}

func TestScannerCRLF(t *testing.T) {
	t.Parallel()

	records := readAllRecords(t, "a,b\r\n1,2\r\n", Dialect{Delimiter: ',', Quote: '"'})
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, records)
}

func TestScannerUnterminatedQuote(t *testing.T) {
	t.Parallel()

	sc := NewScanner(strings.NewReader("a,b\n\"broken,2\n"), Dialect{Delimiter: ',', Quote: '"'})

	_, err := sc.Read()
	require.NoError(t, err)

	_, err = sc.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, swiftcsv.ErrUnterminatedQuote)

	var pe *swiftcsv.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Positive(t, pe.Line)
}

func TestScannerBareQuote(t *testing.T) {
	t.Parallel()

	sc := NewScanner(strings.NewReader("a,b\nx\"y,2\n"), Dialect{Delimiter: ',', Quote: '"'})

	_, err := sc.Read()
	require.NoError(t, err)

	_, err = sc.Read()
	assert.ErrorIs(t, err, swiftcsv.ErrBareQuote)
}
