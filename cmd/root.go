package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csv-analyzer",
	Short: "Interactive CSV profiling from the terminal",
	Long: `Profile delimited text files without leaving the terminal:
dialect and header detection, per-column types, cardinality,
emptiness, and sample values.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
