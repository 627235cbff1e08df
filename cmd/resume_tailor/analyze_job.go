package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/parsing"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job posting into structured JSON",
	Long:  "Analyze a job posting (local file or URL) into structured JSON with title, company, and skill demands, validating against the job posting schema.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobInput       string
	analyzeJobURL         string
	analyzeJobOutput      string
	analyzeJobRunID       string
	analyzeJobDatabaseURL string
	analyzeJobUseBrowser  bool
	analyzeJobVerbose     bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobInput, "in", "i", "", "Path to job posting text file")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "url", "", "URL to fetch the job posting from (instead of --in)")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JSON file (stdout if empty)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobRunID, "run-id", "", "Run ID to load job posting text from the database (instead of --in/--url)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobDatabaseURL, "db-url", "", "PostgreSQL connection URL (required with --run-id, defaults to DATABASE_URL env var)")
	analyzeJobCmd.Flags().BoolVar(&analyzeJobUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeJobCmd.Flags().BoolVarP(&analyzeJobVerbose, "verbose", "v", false, "Print fetch progress")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	useDatabase := analyzeJobRunID != ""
	useLocal := analyzeJobInput != "" || analyzeJobURL != ""

	if useDatabase && useLocal {
		return fmt.Errorf("cannot use --run-id with --in/--url")
	}
	if !useDatabase && !useLocal {
		return fmt.Errorf("must provide one of --in, --url, or --run-id")
	}
	if analyzeJobInput != "" && analyzeJobURL != "" {
		return fmt.Errorf("--in and --url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	if useLocal {
		var rawText string
		var err error
		if analyzeJobURL != "" {
			rawText, err = ingestion.FetchURL(ctx, analyzeJobURL, analyzeJobUseBrowser, analyzeJobVerbose)
			if err != nil {
				return fmt.Errorf("failed to fetch job posting: %w", err)
			}
		} else {
			rawText, err = ingestion.ReadFile(analyzeJobInput)
			if err != nil {
				return fmt.Errorf("failed to read job posting: %w", err)
			}
		}

		posting, err := parsing.AnalyzeJobPosting(rawText)
		if err != nil {
			return fmt.Errorf("failed to analyze job posting: %w", err)
		}

		return emitValidatedJSON(posting, analyzeJobOutput, "schemas/job_posting.schema.json")
	}

	runID, err := uuid.Parse(analyzeJobRunID)
	if err != nil {
		return fmt.Errorf("invalid run-id: %w", err)
	}

	database, err := connectForRun(ctx, analyzeJobDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	rawText, err := database.GetTextArtifact(ctx, runID, db.StepJobText)
	if err != nil {
		return fmt.Errorf("failed to load job posting text for run: %w", err)
	}
	if rawText == "" {
		return fmt.Errorf("no job posting text stored for run %s", runID)
	}

	posting, err := parsing.AnalyzeJobPosting(rawText)
	if err != nil {
		return fmt.Errorf("failed to analyze job posting: %w", err)
	}

	if err := database.SaveArtifact(ctx, runID, db.StepJobPosting, db.CategoryParsing, posting); err != nil {
		return fmt.Errorf("failed to save job posting: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Analyzed job posting and saved to database (run: %s)\n", runID)
	return nil
}
