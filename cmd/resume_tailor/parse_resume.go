package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume text file into a structured profile JSON",
	Long:  "Parse raw resume text into a structured profile JSON that validates against the profile schema. Works on a local file, or on the resume text stored for an existing run.",
	RunE:  runParseResume,
}

var (
	parseResumeInput       string
	parseResumeOutput      string
	parseResumeRunID       string
	parseResumeDatabaseURL string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume text file")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (stdout if empty)")
	parseResumeCmd.Flags().StringVar(&parseResumeRunID, "run-id", "", "Run ID to load resume text from the database (instead of --in)")
	parseResumeCmd.Flags().StringVar(&parseResumeDatabaseURL, "db-url", "", "PostgreSQL connection URL (required with --run-id, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	useDatabase := parseResumeRunID != ""
	if useDatabase && parseResumeInput != "" {
		return fmt.Errorf("cannot use --run-id with --in")
	}
	if !useDatabase && parseResumeInput == "" {
		return fmt.Errorf("must provide either --in or --run-id")
	}

	ctx := context.Background()

	if !useDatabase {
		rawText, err := ingestion.ReadFile(parseResumeInput)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}

		profile, err := parsing.ParseResume(rawText)
		if err != nil {
			return fmt.Errorf("failed to parse resume: %w", err)
		}

		return emitValidatedJSON(profile, parseResumeOutput, "schemas/profile.schema.json")
	}

	runID, err := uuid.Parse(parseResumeRunID)
	if err != nil {
		return fmt.Errorf("invalid run-id: %w", err)
	}

	database, err := connectForRun(ctx, parseResumeDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	rawText, err := database.GetTextArtifact(ctx, runID, db.StepResumeText)
	if err != nil {
		return fmt.Errorf("failed to load resume text for run: %w", err)
	}
	if rawText == "" {
		return fmt.Errorf("no resume text stored for run %s", runID)
	}

	profile, err := parsing.ParseResume(rawText)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if err := database.SaveArtifact(ctx, runID, db.StepProfile, db.CategoryParsing, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Parsed resume and saved profile (run: %s)\n", runID)
	return nil
}

// connectForRun resolves the database URL (flag, then env) and connects.
func connectForRun(ctx context.Context, dbURL string) (*db.DB, error) {
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL required when using --run-id")
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// emitValidatedJSON marshals v, writes it to outputPath (or stdout), and
// validates the written file against the named schema when the schema can be
// located. A schema that cannot be loaded is a warning, not a failure.
func emitValidatedJSON(v any, outputPath, schemaRelPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outputPath == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(outputPath, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemaRelPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)
	return nil
}
