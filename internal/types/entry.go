package types

// Entry represents one work-experience, education, or project record.
// DateRange is kept as an opaque string; no date arithmetic is performed.
type Entry struct {
	Title             string         `json:"title"`
	Organization      string         `json:"organization,omitempty"`
	DateRange         string         `json:"date_range,omitempty"`
	DescriptionPoints []string       `json:"description_points"`
	Analysis          *EntryAnalysis `json:"analysis,omitempty"` // Populated only after the matching stage
}

// EntryAnalysis holds per-entry matching results computed against a job posting.
type EntryAnalysis struct {
	MatchedSkills  []string `json:"matched_skills"`
	RelevanceScore float64  `json:"relevance_score"` // In [0,1]
	PlausibleGaps  []string `json:"plausible_gaps"`
	Explanation    string   `json:"explanation"`
}

// Clone returns a deep copy of the entry, including its analysis if present.
func (e Entry) Clone() Entry {
	clone := e
	clone.DescriptionPoints = append([]string(nil), e.DescriptionPoints...)
	if e.Analysis != nil {
		analysis := *e.Analysis
		analysis.MatchedSkills = append([]string(nil), e.Analysis.MatchedSkills...)
		analysis.PlausibleGaps = append([]string(nil), e.Analysis.PlausibleGaps...)
		clone.Analysis = &analysis
	}
	return clone
}

// CloneEntries deep-copies a slice of entries.
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	cloned := make([]Entry, len(entries))
	for i, entry := range entries {
		cloned[i] = entry.Clone()
	}
	return cloned
}
