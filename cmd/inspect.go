package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quadboy321/CSV-Analyzer/internal/config"
	"github.com/quadboy321/CSV-Analyzer/internal/profiler"
)

var (
	inspectJSON      bool
	inspectDelimiter string
	inspectHeader    string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Analyze a CSV file and browse the results",
	Long: `Analyze a CSV file and browse the results interactively.

With no argument the session starts at the file prompt. With --json the
report is printed once as JSON and no session is started.

Examples:
  csv-analyzer inspect                          # prompt for a path
  csv-analyzer inspect data.csv                 # analyze, then browse
  csv-analyzer inspect data.csv --json          # machine-readable report
  csv-analyzer inspect data.csv --delimiter ';' --header no`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := buildInspectOptions()
		if err != nil {
			log.Fatalf("%v", err)
		}
		analyzer := profiler.NewAnalyzer(opts)

		if inspectJSON {
			if len(args) == 0 {
				log.Fatalf("--json requires a file argument")
			}
			report, err := analyzer.Analyze(args[0])
			if err != nil {
				log.Fatalf("Failed to analyze %s: %v", args[0], err)
			}
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode report: %v", err)
			}
			fmt.Println(string(out))
			return
		}

		initial := ""
		if len(args) == 1 {
			initial = args[0]
		}
		runSession(os.Stdin, os.Stdout, analyzer, initial)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false,
		"Print the report as JSON and exit")
	inspectCmd.Flags().StringVar(&inspectDelimiter, "delimiter", "auto",
		"Field delimiter: auto, ',', ';', '|' or tab")
	inspectCmd.Flags().StringVar(&inspectHeader, "header", "auto",
		"Header handling: auto, yes or no")
}

// buildInspectOptions folds the flags and environment config into analyzer
// options.
func buildInspectOptions() (profiler.Options, error) {
	cfg := config.Load()
	opts := profiler.Options{DetectBytes: cfg.DetectBytes}

	switch d := inspectDelimiter; d {
	case "auto", "":
	case ",", ";", "|":
		opts.Delimiter = d[0]
	case "\t", `\t`, "tab":
		opts.Delimiter = '\t'
	default:
		return opts, fmt.Errorf("unsupported delimiter %q", d)
	}

	switch inspectHeader {
	case "auto", "":
	case "yes", "y", "true":
		opts.Header = profiler.HeaderOn
	case "no", "n", "false":
		opts.Header = profiler.HeaderOff
	default:
		return opts, fmt.Errorf("unsupported header mode %q", inspectHeader)
	}
	return opts, nil
}

// runSession drives the interactive loop: prompt for a path, show the
// summary, then serve the single-key menu until the user quits. Every
// analysis failure prints one line and falls back to the prompt.
func runSession(in io.Reader, out io.Writer, analyzer *profiler.Analyzer, initial string) {
	input := bufio.NewScanner(in)

	clearScreen(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "CSV ANALYZER")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	path := initial
	for {
		if path == "" {
			fmt.Fprint(out, "\nEnter CSV file path (or 'exit'): ")
			if !input.Scan() {
				return
			}
			path = strings.TrimSpace(input.Text())
			if path == "" {
				continue
			}
			if low := strings.ToLower(path); low == "exit" || low == "quit" {
				return
			}
		}

		report, err := analyzer.Analyze(path)
		if err != nil {
			if errors.Is(err, profiler.ErrFileNotFound) {
				fmt.Fprintf(out, "File not found: %s\n", path)
			} else {
				fmt.Fprintf(out, "Error processing file: %v\n", err)
			}
			path = ""
			continue
		}
		path = ""

		displaySummary(out, report)
		if !browseReport(input, out, report) {
			return
		}
	}
}

// browseReport serves the menu over one report. It reports whether the
// session should continue with another file.
func browseReport(input *bufio.Scanner, out io.Writer, report *profiler.Report) bool {
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("=", 60))
		fmt.Fprintln(out, "OPTIONS: [1-9] Column Details | [R]efresh | [N]ew File | [Q]uit")
		fmt.Fprint(out, "Select: ")
		if !input.Scan() {
			return false
		}
		choice := strings.ToLower(strings.TrimSpace(input.Text()))

		switch {
		case choice == "q":
			return false
		case choice == "n":
			return true
		case choice == "r":
			displaySummary(out, report)
		case isDigits(choice):
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(report.Columns) {
				fmt.Fprintln(out, "Invalid column number!")
				continue
			}
			displayColumnDetails(out, report, idx-1)
		default:
			fmt.Fprintln(out, "Invalid option!")
		}
	}
}

func displaySummary(out io.Writer, report *profiler.Report) {
	clearScreen(out)
	fmt.Fprintf(out, "\nCSV ANALYSIS REPORT: %s\n", report.FileName)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Total Rows: %s\n", humanize.Comma(int64(report.RowCount)))
	fmt.Fprintf(out, "Total Columns: %d\n", len(report.Headers))

	fmt.Fprintln(out, "\nCOLUMN SUMMARY")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "%-20s %-10s %-10s %-10s %s\n",
		"Column", "Type", "Unique", "Empty", "Sample Values")
	fmt.Fprintln(out, strings.Repeat("-", 60))

	for _, col := range report.Columns {
		samples := make([]string, len(col.Sample))
		for i, v := range col.Sample {
			samples[i] = truncate(v, 20)
		}
		fmt.Fprintf(out, "%-20s %-10s %-10s %5.1f%%    %s\n",
			clip(col.Name, 18),
			col.Type,
			humanize.Comma(int64(col.UniqueCount)),
			col.EmptyPct,
			strings.Join(samples, ", "))
	}
}

func displayColumnDetails(out io.Writer, report *profiler.Report, idx int) {
	col := report.Columns[idx]

	clearScreen(out)
	fmt.Fprintf(out, "\nDETAILED ANALYSIS: %s\n", col.Name)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Column Type: %s\n", strings.ToUpper(col.Type.String()))
	fmt.Fprintf(out, "Unique Values: %s\n", humanize.Comma(int64(col.UniqueCount)))
	fmt.Fprintf(out, "Empty Values: %s (%.1f%%)\n",
		humanize.Comma(int64(col.EmptyCount)), col.EmptyPct)

	if col.Type == profiler.NumberType || col.Type == profiler.MixedType {
		if summary, ok := profiler.SummarizeNumeric(col); ok {
			fmt.Fprintln(out, "\nNumber Analysis:")
			fmt.Fprintf(out, "  Min: %s\n", humanize.FormatFloat("#,###.##", summary.Min))
			fmt.Fprintf(out, "  Max: %s\n", humanize.FormatFloat("#,###.##", summary.Max))
			fmt.Fprintf(out, "  Avg: %s\n", humanize.FormatFloat("#,###.##", summary.Avg))
		}
	}

	if col.UniqueCount <= 20 {
		fmt.Fprintln(out, "\nAll Unique Values:")
		for _, value := range profiler.ListValues(col) {
			fmt.Fprintf(out, "  • %s\n", value)
		}
	} else {
		// High-cardinality columns show the first few values as
		// encountered rather than a sorted listing.
		fmt.Fprintln(out, "\nCommon Values:")
		for _, value := range col.Sample {
			fmt.Fprintf(out, "  • %s\n", value)
		}
	}
}

// clearScreen resets the terminal so each view starts at the top.
func clearScreen(out io.Writer) {
	fmt.Fprint(out, "\x1b[2J\x1b[H")
}

// clip hard-cuts s at max runes for fixed-width table cells.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// truncate shortens s for display, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
