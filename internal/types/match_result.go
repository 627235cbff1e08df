package types

// Match-tier thresholds applied to MatchScore.
const (
	strongMatchThreshold   = 0.7
	moderateMatchThreshold = 0.4
)

// MatchResult represents the outcome of comparing a candidate's declared
// skills against a job posting. All skill lists hold display-cased,
// deduplicated names. The canonicalized forms of MatchedRequired and
// MissingRequired exactly partition the posting's canonicalized required set.
type MatchResult struct {
	MatchedRequired  []string `json:"matched_required"`
	MatchedPreferred []string `json:"matched_preferred"`
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`
	ExtraSkills      []string `json:"extra_skills"`
	MatchScore       float64  `json:"match_score"` // |matched required| / |required|, or 1.0 when required is empty
}

// Tier buckets the match score into a coarse label for display.
func (m *MatchResult) Tier() string {
	switch {
	case m.MatchScore >= strongMatchThreshold:
		return "strong"
	case m.MatchScore >= moderateMatchThreshold:
		return "moderate"
	default:
		return "weak"
	}
}

// NoRequiredSkills reports whether the posting listed no required skills at
// all. The match score is defined as 1.0 in that case, so the score alone
// cannot distinguish a perfect match from an empty requirement list.
func (m *MatchResult) NoRequiredSkills() bool {
	return len(m.MatchedRequired) == 0 && len(m.MissingRequired) == 0
}
