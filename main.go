package main

import (
	"github.com/joho/godotenv"

	"github.com/quadboy321/CSV-Analyzer/cmd"
)

func main() {
	// Optional .env for CSV_ANALYZER_* settings.
	_ = godotenv.Load()

	cmd.Execute()
}
