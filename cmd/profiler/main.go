// Package main provides the entry point for the resume profiler CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-profiler/internal/logging"
)

var (
	rootLogLevel  string
	rootLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Resume profile extraction and video script generation",
	Long:  "Profiler extracts a structured professional profile from resume documents, scores achievements, and generates narrated video scripts via CLI or REST API.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(logging.Config{Level: rootLogLevel, Format: rootLogFormat})
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "console", "Log format: console or json")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
