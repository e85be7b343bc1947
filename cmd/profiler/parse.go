package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/jonathan/resume-profiler/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a structured profile from a resume document",
	Long: `Reads a resume document (.txt, .docx, .pdf, .html), extracts the professional
profile, and prints it as JSON. Use --output to write to a file instead of stdout.`,
	RunE: runParse,
}

var (
	parseResume      string
	parseVariant     string
	parseDefaultRole string
	parseOutput      string
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume document (required)")
	parseCmd.Flags().StringVar(&parseVariant, "variant", parser.VariantGeneral, "Parser variant: general or template")
	parseCmd.Flags().StringVar(&parseDefaultRole, "default-role", "", "Role to use when extraction finds nothing")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write profile JSON to this file instead of stdout")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable profile summary to stderr")

	_ = parseCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	sourceText, err := ingestion.ReadDocument(parseResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	opts := parser.Options{}
	if parseDefaultRole != "" {
		opts.DefaultRole = parseDefaultRole
	}

	p := parser.New(parseVariant, opts)
	if p == nil {
		return fmt.Errorf("unknown parser variant: %q", parseVariant)
	}

	resumeProfile := p.Parse(sourceText)

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(resumeProfile)
		printer.PrintAchievements(resumeProfile.Achievements)
	}

	data, err := json.MarshalIndent(resumeProfile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if parseOutput != "" {
		if err := os.WriteFile(parseOutput, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(data))
	return nil
}
