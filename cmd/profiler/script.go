package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-profiler/internal/config"
	"github.com/jonathan/resume-profiler/internal/parser"
	"github.com/jonathan/resume-profiler/internal/pipeline"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Run the full extraction and script generation pipeline",
	Long: `Orchestrates the entire process: document reading -> profile extraction -> validation -> script generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScriptCmd,
}

var (
	scriptConfigPath  string
	scriptResume      string
	scriptVariant     string
	scriptDefaultRole string
	scriptOutput      string
	scriptAPIKey      string
	scriptVerbose     bool
	scriptDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	scriptCmd.Flags().StringVar(&scriptConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scriptCmd.Flags().StringVarP(&scriptResume, "resume", "r", "", "Path to resume document (.txt, .docx, .pdf, .html)")
	scriptCmd.Flags().StringVar(&scriptVariant, "variant", "", "Parser variant: general or template")
	scriptCmd.Flags().StringVar(&scriptDefaultRole, "default-role", "", "Role to use when extraction finds nothing")
	scriptCmd.Flags().StringVarP(&scriptOutput, "output", "o", "", "Write the generated script to this file instead of stdout")
	scriptCmd.Flags().BoolVarP(&scriptVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	scriptCmd.Flags().StringVar(&scriptAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var; deterministic templates are used without one)")

	// Database URL for artifact persistence
	scriptCmd.Flags().StringVar(&scriptDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(scriptCmd)
}

func runScriptCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if scriptConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scriptConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if scriptVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", scriptConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = scriptResume
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = scriptVariant
	}
	if cmd.Flags().Changed("default-role") {
		cfg.DefaultRole = scriptDefaultRole
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = scriptOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scriptAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scriptVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scriptDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Variant: parser.VariantGeneral,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}

	// Step 5: API key and database URL fall back to the environment.
	// Both are optional: without a key the deterministic templates run,
	// without a database no artifacts are persisted.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		Variant:     cfg.Variant,
		DefaultRole: cfg.DefaultRole,
		APIKey:      cfg.APIKey,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(result.Script), 0o644); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
		fmt.Printf("Script written to %s\n", cfg.Output)
		return nil
	}

	fmt.Println(result.Script)
	return nil
}
