package types

// SectionExplanation summarizes the suggested changes within one resume section.
type SectionExplanation struct {
	Section     string   `json:"section"`
	ChangeCount int      `json:"change_count"`
	Reasons     []string `json:"reasons,omitempty"` // Sample of distinct change reasons
	Text        string   `json:"text"`
}

// Explanation is the template-driven explanation bundle produced by the
// final pipeline stage.
type Explanation struct {
	GlobalStrategy      string               `json:"global_strategy"`
	SectionExplanations []SectionExplanation `json:"section_explanations"`
	SkillReorderNotes   []string             `json:"skill_reorder_notes"` // Capped
	GapNotes            []string             `json:"gap_notes"`           // Capped
	KeyPoints           []string             `json:"key_points"`
}
