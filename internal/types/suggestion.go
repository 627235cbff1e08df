package types

import "fmt"

// SuggestionStatus tracks the review state of a suggestion.
type SuggestionStatus string

// Valid suggestion statuses. Transitions are monotone: once a suggestion
// leaves StatusPending it never returns to it.
const (
	StatusPending   SuggestionStatus = "pending"
	StatusAccepted  SuggestionStatus = "accepted"
	StatusEdited    SuggestionStatus = "edited"
	StatusDismissed SuggestionStatus = "dismissed"
)

// IsValid reports whether the status is one of the known values.
func (s SuggestionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusEdited, StatusDismissed:
		return true
	}
	return false
}

// Suggestion represents a proposed, reviewable edit to a single bullet point.
type Suggestion struct {
	ID                   string           `json:"id,omitempty"`
	Original             string           `json:"original"`
	Suggested            string           `json:"suggested"`
	Reason               string           `json:"reason"`
	VerificationQuestion string           `json:"verification_question,omitempty"`
	Section              string           `json:"section"`
	Confidence           float64          `json:"confidence"` // In [0,1]
	Status               SuggestionStatus `json:"status"`
}

// SetStatus applies a review decision. Moving a reviewed suggestion back to
// pending is not a supported operation.
func (s *Suggestion) SetStatus(next SuggestionStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("unknown suggestion status %q", next)
	}
	if next == StatusPending && s.Status != StatusPending {
		return fmt.Errorf("suggestion status cannot return to %q from %q", StatusPending, s.Status)
	}
	s.Status = next
	return nil
}
