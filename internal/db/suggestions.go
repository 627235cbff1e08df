package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-tailor/internal/types"
)

// StoredSuggestion is a suggestion row tied to a tailoring run
type StoredSuggestion struct {
	ID    uuid.UUID `json:"id"`
	RunID uuid.UUID `json:"run_id"`
	types.Suggestion
}

// SaveSuggestions inserts every suggestion of a run and returns the stored
// rows with their assigned IDs
func (db *DB) SaveSuggestions(ctx context.Context, runID uuid.UUID, suggestions []types.Suggestion) ([]StoredSuggestion, error) {
	stored := make([]StoredSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		var id uuid.UUID
		err := db.pool.QueryRow(ctx,
			`INSERT INTO suggestions (run_id, section, original, suggested, reason, verification_question, confidence, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			runID, s.Section, s.Original, s.Suggested, s.Reason, s.VerificationQuestion, s.Confidence, string(s.Status),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to save suggestion: %w", err)
		}
		row := StoredSuggestion{ID: id, RunID: runID, Suggestion: s}
		row.Suggestion.ID = id.String()
		stored = append(stored, row)
	}
	return stored, nil
}

// GetSuggestion retrieves one suggestion by ID. Returns nil when not found.
func (db *DB) GetSuggestion(ctx context.Context, id uuid.UUID) (*StoredSuggestion, error) {
	var s StoredSuggestion
	var status string
	err := db.pool.QueryRow(ctx,
		`SELECT id, run_id, section, original, suggested, reason, COALESCE(verification_question, ''), confidence, status
		 FROM suggestions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.RunID, &s.Section, &s.Original, &s.Suggested, &s.Reason, &s.VerificationQuestion, &s.Confidence, &status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	s.Status = types.SuggestionStatus(status)
	s.Suggestion.ID = s.ID.String()
	return &s, nil
}

// ListSuggestions retrieves a run's suggestions in insertion order
func (db *DB) ListSuggestions(ctx context.Context, runID uuid.UUID) ([]StoredSuggestion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, section, original, suggested, reason, COALESCE(verification_question, ''), confidence, status
		 FROM suggestions WHERE run_id = $1 ORDER BY created_at ASC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []StoredSuggestion
	for rows.Next() {
		var s StoredSuggestion
		var status string
		if err := rows.Scan(&s.ID, &s.RunID, &s.Section, &s.Original, &s.Suggested, &s.Reason, &s.VerificationQuestion, &s.Confidence, &status); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		s.Status = types.SuggestionStatus(status)
		s.Suggestion.ID = s.ID.String()
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

// UpdateSuggestionStatus records a review decision. Reviewed suggestions
// cannot return to pending; the update is rejected at the SQL level so
// concurrent reviewers cannot race a suggestion backwards.
func (db *DB) UpdateSuggestionStatus(ctx context.Context, id uuid.UUID, status types.SuggestionStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("unknown suggestion status %q", status)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE suggestions SET status = $1, reviewed_at = NOW()
		 WHERE id = $2 AND (status = 'pending' OR $1 <> 'pending')`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update suggestion status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("suggestion %s not found or already reviewed", id)
	}
	return nil
}
