package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/matching"
	"github.com/jonathan/resume-tailor/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match candidate skills against a job posting's demands",
	Long:  "Match a parsed profile against an analyzed job posting, producing matched, missing, and related skills with a coverage score. Works on local JSON files, or on the artifacts stored for an existing run.",
	RunE:  runMatch,
}

var (
	matchProfilePath string
	matchPostingPath string
	matchOutput      string
	matchRunID       string
	matchDatabaseURL string
)

func init() {
	matchCmd.Flags().StringVar(&matchProfilePath, "profile", "", "Path to profile JSON (from parse-resume)")
	matchCmd.Flags().StringVar(&matchPostingPath, "posting", "", "Path to job posting JSON (from analyze-job)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (stdout if empty)")
	matchCmd.Flags().StringVar(&matchRunID, "run-id", "", "Run ID to load profile and posting artifacts from the database")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (required with --run-id, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	useDatabase := matchRunID != ""
	useFiles := matchProfilePath != "" || matchPostingPath != ""

	if useDatabase && useFiles {
		return fmt.Errorf("cannot use --run-id with --profile/--posting")
	}
	if !useDatabase && (matchProfilePath == "" || matchPostingPath == "") {
		return fmt.Errorf("must provide both --profile and --posting, or --run-id")
	}

	ctx := context.Background()

	if useFiles {
		var profile types.Profile
		if err := readJSONFile(matchProfilePath, &profile); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		var posting types.JobPosting
		if err := readJSONFile(matchPostingPath, &posting); err != nil {
			return fmt.Errorf("failed to load job posting: %w", err)
		}

		result := matching.MatchSkills(profile.Skills, &posting)
		return emitValidatedJSON(result, matchOutput, "schemas/match_result.schema.json")
	}

	runID, err := uuid.Parse(matchRunID)
	if err != nil {
		return fmt.Errorf("invalid run-id: %w", err)
	}

	database, err := connectForRun(ctx, matchDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	var profile types.Profile
	if err := loadArtifact(ctx, database, runID, db.StepProfile, &profile); err != nil {
		return err
	}

	var posting types.JobPosting
	if err := loadArtifact(ctx, database, runID, db.StepJobPosting, &posting); err != nil {
		return err
	}

	result := matching.MatchSkills(profile.Skills, &posting)

	if err := database.SaveArtifact(ctx, runID, db.StepMatchResult, db.CategoryMatching, result); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Matched skills and saved result (run: %s, score: %.2f)\n", runID, result.MatchScore)
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func loadArtifact(ctx context.Context, database *db.DB, runID uuid.UUID, step string, v any) error {
	data, err := database.GetArtifact(ctx, runID, step)
	if err != nil {
		return fmt.Errorf("failed to load %s artifact: %w", step, err)
	}
	if data == nil {
		return fmt.Errorf("no %s artifact stored for run %s (run the earlier stages first)", step, runID)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s artifact: %w", step, err)
	}
	return nil
}
