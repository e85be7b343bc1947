package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-profiler/internal/parser"
	"github.com/jonathan/resume-profiler/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate scripts for every resume in a directory",
	Long: `Runs the full pipeline concurrently over all supported documents in a
directory and writes one script per resume to the output directory.`,
	RunE: runBatch,
}

var (
	batchDir         string
	batchOutDir      string
	batchVariant     string
	batchConcurrency int
	batchDatabaseURL string
)

var batchExtensions = map[string]bool{
	".txt":  true,
	".docx": true,
	".pdf":  true,
	".html": true,
	".htm":  true,
}

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume documents (required)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "scripts", "Directory to write generated scripts")
	batchCmd.Flags().StringVar(&batchVariant, "variant", parser.VariantGeneral, "Parser variant: general or template")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes processed in parallel")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	entries, err := os.ReadDir(batchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var resumes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if batchExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			resumes = append(resumes, filepath.Join(batchDir, entry.Name()))
		}
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no supported documents found in %s", batchDir)
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	databaseURL := batchDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")

	if batchConcurrency < 1 {
		batchConcurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, resumePath := range resumes {
		g.Go(func() error {
			opts := pipeline.RunOptions{
				ResumePath:  resumePath,
				Variant:     batchVariant,
				APIKey:      apiKey,
				DatabaseURL: databaseURL,
			}

			result, err := pipeline.Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", resumePath, err)
			}

			base := strings.TrimSuffix(filepath.Base(resumePath), filepath.Ext(resumePath))
			outPath := filepath.Join(batchOutDir, base+".script.txt")
			if err := os.WriteFile(outPath, []byte(result.Script), 0o644); err != nil {
				return fmt.Errorf("%s: failed to write script: %w", resumePath, err)
			}

			log.Info().Str("resume", resumePath).Str("script", outPath).Msg("script generated")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Generated %d scripts in %s\n", len(resumes), batchOutDir)
	return nil
}
