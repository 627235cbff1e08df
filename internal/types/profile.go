package types

// Profile represents a structured candidate resume extracted from raw text.
// It is created once by the resume parser; downstream stages that need to
// annotate or rewrite it must operate on a Clone, never the original.
type Profile struct {
	Name       string      `json:"name"`
	Contact    ContactInfo `json:"contact"`
	Summary    string      `json:"summary,omitempty"`
	Skills     []string    `json:"skills"` // Order-preserving, case-insensitively deduplicated
	Experience []Entry     `json:"experience"`
	Education  []Entry     `json:"education"`
	Projects   []Entry     `json:"projects"`
	RawText    string      `json:"raw_text,omitempty"` // Retained for diagnostics
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = CloneEntries(p.Experience)
	clone.Education = CloneEntries(p.Education)
	clone.Projects = CloneEntries(p.Projects)
	return &clone
}

// AllEntries returns the experience, education, and project entries in order.
// The returned slices alias the profile's own entries.
func (p *Profile) AllEntries() [][]Entry {
	return [][]Entry{p.Experience, p.Education, p.Projects}
}
