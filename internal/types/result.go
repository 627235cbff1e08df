package types

// TailoringResult is the final output of a pipeline run. Complete is false
// when a non-fatal stage failure forced the rewrite or explanation stage to
// degrade to its fallback; Warnings records what degraded and why.
type TailoringResult struct {
	Profile            *Profile     `json:"profile"`
	JobPosting         *JobPosting  `json:"job_posting"`
	MatchResult        *MatchResult `json:"match_result"`
	Suggestions        []Suggestion `json:"suggestions"`
	ReorderedSkills    []string     `json:"reordered_skills"`
	TailoredExperience []Entry      `json:"tailored_experience"`
	TailoredProjects   []Entry      `json:"tailored_projects"`
	Explanation        *Explanation `json:"explanation"`
	Complete           bool         `json:"complete"`
	Warnings           []string     `json:"warnings,omitempty"`
}
