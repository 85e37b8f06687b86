package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/quadboy321/CSV-Analyzer/internal/config"
	"github.com/quadboy321/CSV-Analyzer/internal/connectors"
	"github.com/quadboy321/CSV-Analyzer/internal/profiler"
)

var (
	scanDir       string
	scanFormat    string
	scanRecursive bool
	scanVerbose   bool
	scanMinSize   int64
	scanMaxSize   int64
	scanWorkers   int
	scanOutput    string
)

// scanResult pairs one discovered file with its analysis outcome.
type scanResult struct {
	Path     string
	Size     int64
	Modified time.Time
	Report   *profiler.Report
	Duration time.Duration
	Err      error
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Profile every data file under a directory",
	Long: `Discover data files under a directory and profile each one,
printing a per-file summary when done.

Examples:
  csv-analyzer scan --dir ./data
  csv-analyzer scan --dir ./data --recursive --workers 4
  csv-analyzer scan --dir ./data --verbose --output report.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		options := connectors.DiscoveryOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}
		files, err := connectors.DiscoverFiles(scanDir, scanFormat, options)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if len(files) == 0 {
			fmt.Printf("No %s files found in %s\n", strings.ToUpper(scanFormat), scanDir)
			return
		}
		fmt.Printf("Found %d %s files\n", len(files), strings.ToUpper(scanFormat))

		workers := scanWorkers
		if workers <= 0 {
			workers = cfg.ScanWorkers
		}

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)

		analyzer := profiler.NewAnalyzer(profiler.Options{DetectBytes: cfg.DetectBytes})

		start := time.Now()
		results := profileFiles(files, analyzer, workers, bar)
		bar.Finish()

		writeScanReport(results, time.Since(start))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "csv",
		"File extension to profile")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Include per-column details")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"Concurrent files (default: CSV_ANALYZER_SCAN_WORKERS or CPU count)")
	scanCmd.Flags().StringVar(&scanOutput, "output", "",
		"Write the report to a file instead of stdout")

	scanCmd.MarkFlagRequired("dir")
}

// profileFiles analyzes the files with at most workers analyses in flight.
// Each file's analysis stays strictly sequential; only distinct files
// overlap.
func profileFiles(files []connectors.FileMeta, analyzer *profiler.Analyzer, workers int, bar *progressbar.ProgressBar) []scanResult {
	sem := semaphore.NewWeighted(int64(workers))
	results := make([]scanResult, len(files))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, f connectors.FileMeta) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = scanResult{Path: f.Path, Size: f.Size, Modified: f.Modified, Err: err}
				return
			}
			defer sem.Release(1)

			fileStart := time.Now()
			report, err := analyzer.Analyze(f.Path)
			results[i] = scanResult{
				Path:     f.Path,
				Size:     f.Size,
				Modified: f.Modified,
				Report:   report,
				Duration: time.Since(fileStart),
				Err:      err,
			}
			bar.Add(1)
		}(i, file)
	}
	wg.Wait()

	return results
}

func writeScanReport(results []scanResult, elapsed time.Duration) {
	var output strings.Builder

	failed := 0
	totalRows := 0
	totalColumns := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		totalRows += res.Report.RowCount
		totalColumns += len(res.Report.Columns)
	}

	output.WriteString("=== SCAN SUMMARY ===\n")
	output.WriteString(fmt.Sprintf("Files processed: %d (%d failed)\n", len(results), failed))
	output.WriteString(fmt.Sprintf("Total rows: %s\n", humanize.Comma(int64(totalRows))))
	output.WriteString(fmt.Sprintf("Total columns: %d\n", totalColumns))
	output.WriteString(fmt.Sprintf("Total processing time: %v\n", elapsed.Round(time.Millisecond)))

	output.WriteString("\n=== PER-FILE ANALYSIS ===\n")
	output.WriteString(fmt.Sprintf("%-40s %9s %10s %8s %12s %10s\n",
		"File", "Size", "Rows", "Columns", "Empty Rate", "Time"))
	output.WriteString(strings.Repeat("-", 94) + "\n")

	for _, res := range results {
		name := filepath.Base(res.Path)
		if len(name) > 37 {
			name = name[:34] + "..."
		}
		if res.Err != nil {
			output.WriteString(fmt.Sprintf("%-40s %9s failed: %v\n",
				name, humanize.Bytes(uint64(res.Size)), res.Err))
			continue
		}
		output.WriteString(fmt.Sprintf("%-40s %9s %10s %8d %11.1f%% %10s\n",
			name,
			humanize.Bytes(uint64(res.Size)),
			humanize.Comma(int64(res.Report.RowCount)),
			len(res.Report.Columns),
			res.Report.EmptyRate(),
			res.Duration.Round(time.Millisecond)))
	}

	var warnings []string
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if rate := res.Report.EmptyRate(); rate > 50 {
			warnings = append(warnings,
				fmt.Sprintf("%s: %.1f%% of cells are empty", filepath.Base(res.Path), rate))
		}
	}
	if len(warnings) > 0 {
		output.WriteString("\n=== WARNINGS ===\n")
		for _, warning := range warnings {
			output.WriteString(fmt.Sprintf("  • %s\n", warning))
		}
	}

	if scanVerbose {
		output.WriteString("\n=== COLUMN DETAILS ===\n")
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			output.WriteString(fmt.Sprintf("\nFile: %s (modified %s)\n",
				res.Path, humanize.Time(res.Modified)))
			for _, col := range res.Report.Columns {
				output.WriteString(fmt.Sprintf("  Column: %s\n", col.Name))
				output.WriteString(fmt.Sprintf("    Type: %s\n", col.Type))
				output.WriteString(fmt.Sprintf("    Unique: %s\n", humanize.Comma(int64(col.UniqueCount))))
				output.WriteString(fmt.Sprintf("    Empty: %d (%.1f%%)\n", col.EmptyCount, col.EmptyPct))
				output.WriteString(fmt.Sprintf("    Sample: %s\n", strings.Join(col.Sample, ", ")))
			}
		}
	}

	if scanOutput != "" {
		if err := os.WriteFile(scanOutput, []byte(output.String()), 0644); err != nil {
			log.Fatalf("Failed to write to output file %s: %v", scanOutput, err)
		}
		fmt.Printf("Results saved to %s\n", scanOutput)
	} else {
		fmt.Print(output.String())
	}
}
