package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Parses the resume and the job posting, matches skills, generates conservative
rewrite suggestions, and explains every change.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath  string
	tailorResume      string
	tailorJob         string
	tailorJobURL      string
	tailorOutput      string
	tailorAPIKey      string
	tailorUseBrowser  bool
	tailorVerbose     bool
	tailorPolish      bool
	tailorDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	tailorCmd.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to resume text file")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	tailorCmd.Flags().StringVarP(&tailorOutput, "output", "o", "", "Path to write the result JSON (stdout if empty)")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print each stage's output as it completes")
	tailorCmd.Flags().BoolVar(&tailorPolish, "polish", false, "Polish suggestion phrasing with Gemini (requires API key; does not change claims)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	tailorCmd.Flags().StringVar(&tailorDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(tailorCmd)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if tailorConfigPath != "" {
		loadedCfg, err := config.LoadConfig(tailorConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if tailorVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", tailorConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (only flags that were explicitly set)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = tailorResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = tailorJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = tailorJobURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = tailorOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = tailorAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = tailorUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = tailorVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = tailorDatabaseURL
	}

	// Step 3: Validate required inputs
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if tailorPolish && cfg.APIKey == "" {
		return fmt.Errorf("--polish requires a Gemini API key (--api-key flag or GEMINI_API_KEY env var)")
	}

	// Step 4: Ingest inputs
	resumeText, err := ingestion.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingestion.FetchURL(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	} else {
		jobText, err = ingestion.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job posting: %w", err)
		}
	}

	// Step 5: Run the pipeline
	result, err := pipeline.New().Run(resumeText, jobText)
	if err != nil {
		return err
	}

	// Step 6: Optional generative polish, never on the critical path
	if tailorPolish && len(result.Suggestions) > 0 {
		polished, err := llm.PolishSuggestions(ctx, cfg.APIKey, result.Suggestions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: polish skipped: %v\n", err)
		} else {
			result.Suggestions = polished
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(result.Profile)
		printer.PrintJobPosting(result.JobPosting)
		printer.PrintMatchResult(result.MatchResult)
		printer.PrintSuggestions(result.Suggestions)
		printer.PrintExplanation(result.Explanation)
	}

	// Step 7: Persist when a database is configured
	if cfg.DatabaseURL != "" {
		if runID, err := persistTailoringRun(ctx, cfg, resumeText, jobText, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist run: %v\n", err)
		} else if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Run persisted: %s\n", runID)
		}
	}

	// Step 8: Emit the result
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, append(output, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Result written to: %s\n", cfg.Output)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(output))
	return nil
}

// persistTailoringRun stores a finished run with its artifacts and
// suggestions.
func persistTailoringRun(ctx context.Context, cfg config.Config, resumeText, jobText string, result *types.TailoringResult) (uuid.UUID, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	company, roleTitle := "", ""
	if result.JobPosting != nil {
		company = result.JobPosting.Company
		roleTitle = result.JobPosting.Title
	}

	runID, err := database.CreateRun(ctx, nil, company, roleTitle, cfg.JobURL)
	if err != nil {
		return uuid.Nil, err
	}

	saveErr := func(err error) {
		if err != nil {
			log.Printf("Failed to save artifact for run %s: %v", runID, err)
		}
	}
	saveErr(database.SaveTextArtifact(ctx, runID, db.StepResumeText, db.CategoryIngestion, resumeText))
	saveErr(database.SaveTextArtifact(ctx, runID, db.StepJobText, db.CategoryIngestion, jobText))
	saveErr(database.SaveArtifact(ctx, runID, db.StepProfile, db.CategoryParsing, result.Profile))
	saveErr(database.SaveArtifact(ctx, runID, db.StepJobPosting, db.CategoryParsing, result.JobPosting))
	saveErr(database.SaveArtifact(ctx, runID, db.StepMatchResult, db.CategoryMatching, result.MatchResult))
	saveErr(database.SaveArtifact(ctx, runID, db.StepReorderedSkills, db.CategoryRewriting, result.ReorderedSkills))
	saveErr(database.SaveArtifact(ctx, runID, db.StepExplanation, db.CategoryExplain, result.Explanation))
	saveErr(database.SaveArtifact(ctx, runID, db.StepResult, db.CategoryResult, result))

	if _, err := database.SaveSuggestions(ctx, runID, result.Suggestions); err != nil {
		log.Printf("Failed to save suggestions for run %s: %v", runID, err)
	}

	status := db.RunStatusCompleted
	if !result.Complete {
		status = db.RunStatusDegraded
	}
	matchScore := 0.0
	if result.MatchResult != nil {
		matchScore = result.MatchResult.MatchScore
	}
	if err := database.CompleteRun(ctx, runID, status, matchScore); err != nil {
		log.Printf("Failed to mark run %s complete: %v", runID, err)
	}

	return runID, nil
}
