package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Tailor one resume against a directory of job postings",
	Long:  "Run the tailoring pipeline for every job posting text file in a directory, writing one result JSON per posting. Postings run concurrently; the pipeline itself is deterministic, so results do not depend on ordering.",
	RunE:  runBatch,
}

var (
	batchResume      string
	batchJobsDir     string
	batchOutputDir   string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to resume text file (required)")
	batchCmd.Flags().StringVar(&batchJobsDir, "jobs-dir", "", "Directory of job posting .txt files (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory to write result JSON files (defaults to the jobs directory)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of postings to process in parallel")
	_ = batchCmd.MarkFlagRequired("resume")
	_ = batchCmd.MarkFlagRequired("jobs-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	resumeText, err := ingestion.ReadFile(batchResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	entries, err := os.ReadDir(batchJobsDir)
	if err != nil {
		return fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var jobFiles []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		jobFiles = append(jobFiles, entry.Name())
	}
	if len(jobFiles) == 0 {
		return fmt.Errorf("no .txt job postings found in %s", batchJobsDir)
	}

	outDir := batchOutputDir
	if outDir == "" {
		outDir = batchJobsDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if batchConcurrency < 1 {
		batchConcurrency = 1
	}

	var completed, degraded atomic.Int64

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for _, name := range jobFiles {
		g.Go(func() error {
			jobText, err := ingestion.ReadFile(filepath.Join(batchJobsDir, name))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			result, err := pipeline.New().Run(resumeText, jobText)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("%s: failed to marshal result: %w", name, err)
			}

			outPath := filepath.Join(outDir, strings.TrimSuffix(name, ".txt")+".result.json")
			if err := os.WriteFile(outPath, append(output, '\n'), 0644); err != nil {
				return fmt.Errorf("%s: failed to write result: %w", name, err)
			}

			if result.Complete {
				completed.Add(1)
			} else {
				degraded.Add(1)
			}
			fmt.Fprintf(os.Stdout, "%s -> %s (score: %.2f)\n", name, outPath, result.MatchResult.MatchScore)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Processed %d posting(s): %d complete, %d degraded\n",
		len(jobFiles), completed.Load(), degraded.Load())
	return nil
}
