// Package pipeline provides the high-level orchestration for the resume
// profiling process: read the document, parse a profile, validate it, and
// generate a video script.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-profiler/internal/db"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/llm"
	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/jonathan/resume-profiler/internal/parser"
	"github.com/jonathan/resume-profiler/internal/pipeline/steps"
	"github.com/jonathan/resume-profiler/internal/profile"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"github.com/jonathan/resume-profiler/internal/script"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath  string
	Variant     string // parser.VariantGeneral or parser.VariantTemplate
	DefaultRole string
	APIKey      string // Gemini key; empty means deterministic template scripts
	Verbose     bool
	DatabaseURL string
	Generator   script.Generator // optional override, used by tests and the server
	OnProgress  ProgressCallback
}

// Result holds the outputs of a completed pipeline run
type Result struct {
	RunID   uuid.UUID
	Profile *profile.ResumeProfile
	Script  string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.Registry[step].Category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run orchestrates the full profiling pipeline
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to database, continuing without persistence")
		} else {
			defer database.Close()
			runID, err = database.CreateRun(ctx, opts.ResumePath, opts.Variant)
			if err != nil {
				log.Warn().Err(err).Msg("failed to create database run")
			}
		}
	}

	failRun := func(err error) (*Result, error) {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed)
		}
		return nil, err
	}

	// Step 1: read the document
	fmt.Printf("Step 1/4: Reading resume document: %s...\n", opts.ResumePath)
	sourceText, err := ingestion.ReadDocument(opts.ResumePath)
	if err != nil {
		return failRun(fmt.Errorf("document reading failed: %w", err))
	}
	emitProgress(&opts, steps.ReadDocument,
		fmt.Sprintf("Read %d characters from %s", len(sourceText), opts.ResumePath), nil)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepSourceText, db.CategoryIngestion, sourceText)
	}

	// Step 2: parse the profile
	fmt.Printf("Step 2/4: Parsing resume profile (%s variant)...\n", opts.Variant)
	p := parser.New(opts.Variant, parser.Options{DefaultRole: opts.DefaultRole})
	if p == nil {
		return failRun(fmt.Errorf("unknown parser variant: %q", opts.Variant))
	}
	resumeProfile := p.Parse(sourceText)
	if opts.Verbose {
		printer.PrintProfile(resumeProfile)
		printer.PrintAchievements(resumeProfile.Achievements)
	}
	emitProgress(&opts, steps.ParseProfile,
		fmt.Sprintf("Parsed profile for %s (%s)", resumeProfile.Name, resumeProfile.CurrentRole), resumeProfile)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepProfile, db.CategoryParsing, resumeProfile)
	}

	// Step 3: validate the profile against the published schema. A missing
	// schema file is tolerated; a schema violation is a bug and fails the run.
	fmt.Printf("Step 3/4: Validating profile...\n")
	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchemaFile); schemaPath != "" {
		schemaContent, rerr := os.ReadFile(schemaPath)
		if rerr != nil {
			return failRun(fmt.Errorf("failed to read profile schema: %w", rerr))
		}
		doc, merr := json.Marshal(resumeProfile)
		if merr != nil {
			return failRun(fmt.Errorf("failed to marshal profile: %w", merr))
		}
		if verr := schemas.ValidateJSONString(string(schemaContent), string(doc)); verr != nil {
			return failRun(fmt.Errorf("profile failed schema validation: %w", verr))
		}
		emitProgress(&opts, steps.ValidateProfile, "Profile validated against schema", nil)
	} else {
		log.Debug().Str("schema", schemas.ProfileSchemaFile).Msg("schema file not found, skipping validation")
		emitProgress(&opts, steps.ValidateProfile, "Schema not found, validation skipped", nil)
	}

	// Step 4: generate the video script
	fmt.Printf("Step 4/4: Generating video script...\n")
	generator := opts.Generator
	if generator == nil {
		if opts.APIKey != "" {
			client, cerr := llm.NewClient(ctx, nil, opts.APIKey)
			if cerr != nil {
				return failRun(fmt.Errorf("failed to create LLM client: %w", cerr))
			}
			defer client.Close()
			generator = script.NewGeminiGenerator(client)
		} else {
			generator = script.NewTemplateGenerator()
		}
	}

	generated, err := generator.Generate(ctx, resumeProfile)
	if err != nil {
		return failRun(fmt.Errorf("script generation failed: %w", err))
	}
	if opts.Verbose {
		printer.PrintScript(generated)
	}
	emitProgress(&opts, steps.GenerateScript,
		fmt.Sprintf("Generated %s script", script.DetectIndustry(resumeProfile)), nil)

	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepScript, db.CategoryGeneration, generated)
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
	}

	return &Result{RunID: runID, Profile: resumeProfile, Script: generated}, nil
}
