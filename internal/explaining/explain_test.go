package explaining

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strategyFor(match *types.MatchResult) string {
	posting := &types.JobPosting{Title: "Backend Engineer", Company: "Acme"}
	return globalStrategy(posting, match)
}

func TestGlobalStrategyStrong(t *testing.T) {
	strategy := strategyFor(&types.MatchResult{
		MatchedRequired: []string{"Go", "Docker", "PostgreSQL", "Kafka"},
		MissingRequired: []string{"Terraform"},
		MatchScore:      0.8,
	})

	assert.Contains(t, strategy, "strong fit")
	assert.Contains(t, strategy, "Backend Engineer")
	assert.Contains(t, strategy, "Acme")
	assert.Contains(t, strategy, "80%")
	assert.Contains(t, strategy, "Go, Docker, and PostgreSQL")
	assert.NotContains(t, strategy, "Kafka", "only the top three matched skills are named")
}

func TestGlobalStrategyModerate(t *testing.T) {
	strategy := strategyFor(&types.MatchResult{
		MatchedRequired: []string{"Python"},
		MissingRequired: []string{"Go"},
		MatchScore:      0.5,
	})

	assert.Contains(t, strategy, "50%")
	assert.Contains(t, strategy, "Lead with Python")
	assert.Contains(t, strategy, "address Go")
}

func TestGlobalStrategyWeak(t *testing.T) {
	strategy := strategyFor(&types.MatchResult{
		MatchedRequired: []string{"SQL"},
		MissingRequired: []string{"Go", "Kubernetes"},
		MatchScore:      0.2,
	})

	assert.Contains(t, strategy, "20%")
	assert.Contains(t, strategy, "Go and Kubernetes")
	assert.Contains(t, strategy, "transferable")
}

func TestGlobalStrategyNoRequiredSkills(t *testing.T) {
	strategy := strategyFor(&types.MatchResult{MatchScore: 1.0})

	assert.Contains(t, strategy, "no explicit skill requirements")
	assert.NotContains(t, strategy, "100%")
}

func TestGlobalStrategyMissingTitleAndCompany(t *testing.T) {
	strategy := globalStrategy(&types.JobPosting{}, &types.MatchResult{
		MatchedRequired: []string{"Go"},
		MatchScore:      1.0,
	})

	assert.Contains(t, strategy, "advertised role")
	assert.Contains(t, strategy, "the company")
}

func TestSectionExplanations(t *testing.T) {
	suggestions := []types.Suggestion{
		{Section: "work_experience", Reason: "replaced a weak verb"},
		{Section: "work_experience", Reason: "replaced a weak verb"},
		{Section: "work_experience", Reason: "specified REST"},
		{Section: "work_experience", Reason: "specified AWS"},
		{Section: "projects", Reason: "replaced a weak verb"},
	}

	explanations := sectionExplanations(suggestions)

	require.Len(t, explanations, 2)

	work := explanations[0]
	assert.Equal(t, "work_experience", work.Section)
	assert.Equal(t, 4, work.ChangeCount)
	// Distinct reasons sampled from the first three suggestions only.
	assert.Equal(t, []string{"replaced a weak verb", "specified REST"}, work.Reasons)
	assert.Equal(t, "4 suggested improvements in Work Experience: replaced a weak verb; specified REST.", work.Text)

	projects := explanations[1]
	assert.Equal(t, 1, projects.ChangeCount)
	assert.Contains(t, projects.Text, "1 suggested improvement in Projects")
}

func TestReorderNotes(t *testing.T) {
	match := &types.MatchResult{
		MatchedRequired:  []string{"Docker"},
		MatchedPreferred: []string{"Terraform", "Helm"},
	}
	original := []string{"Photoshop", "Excel", "Helm", "Word", "Outlook", "Terraform", "Docker"}
	reordered := []string{"Docker", "Terraform", "Helm", "Photoshop", "Excel", "Word", "Outlook"}

	notes := reorderNotes(original, reordered, match)

	require.Len(t, notes, 2)
	assert.Contains(t, notes[0], "Docker")
	assert.Contains(t, notes[0], "required")
	// Terraform climbed four positions, past the preferred-move threshold.
	// Helm stayed put, so it gets no note.
	assert.Contains(t, notes[1], "Terraform")
	assert.Contains(t, notes[1], "preferred")
}

func TestReorderNotesCapped(t *testing.T) {
	required := []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"}
	match := &types.MatchResult{MatchedRequired: required}
	original := append([]string{"Zz"}, required...)
	reordered := append(append([]string(nil), required...), "Zz")

	notes := reorderNotes(original, reordered, match)

	assert.Len(t, notes, maxReorderNotes)
}

func TestGapNotes(t *testing.T) {
	match := &types.MatchResult{
		MissingRequired:  []string{"R1", "R2", "R3", "R4", "R5", "R6"},
		MissingPreferred: []string{"P1", "P2", "P3", "P4"},
	}

	notes := gapNotes(match)

	require.Len(t, notes, maxRequiredGapNotes+maxPreferredGapNotes)
	assert.Contains(t, notes[0], "Required skill R1")
	assert.Contains(t, notes[maxRequiredGapNotes], "Preferred skill P1")
	for _, note := range notes {
		assert.NotContains(t, note, "R6")
		assert.NotContains(t, note, "P4")
	}
}

func TestKeyPoints(t *testing.T) {
	match := &types.MatchResult{
		MatchedRequired: []string{"Go", "Docker"},
		MissingRequired: []string{"Kafka"},
		MatchScore:      2.0 / 3.0,
	}
	suggestions := []types.Suggestion{{}, {}, {}}

	points := keyPoints(match, suggestions, []string{"moved Go up"})

	assert.Equal(t, []string{
		"67% match with the posting's required skills",
		"Strong match on: Go, Docker",
		"Gaps to consider: Kafka",
		"3 suggested edits to review",
		"Skills reordered to lead with the posting's priorities",
	}, points)
}

func TestKeyPointsNoChanges(t *testing.T) {
	match := &types.MatchResult{MatchScore: 1.0}

	points := keyPoints(match, nil, nil)

	assert.Contains(t, points, "No major changes needed")
	assert.Contains(t, points, "The posting lists no explicit required skills")
}

func TestJoinNatural(t *testing.T) {
	assert.Equal(t, "", joinNatural(nil))
	assert.Equal(t, "Go", joinNatural([]string{"Go"}))
	assert.Equal(t, "Go and Python", joinNatural([]string{"Go", "Python"}))
	assert.Equal(t, "Go, Python, and SQL", joinNatural([]string{"Go", "Python", "SQL"}))
}

func TestBuildExplanation(t *testing.T) {
	profile := &types.Profile{Skills: []string{"Excel", "Go"}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", RequiredSkills: []string{"Go"}}
	match := &types.MatchResult{MatchedRequired: []string{"Go"}, MatchScore: 1.0}
	suggestions := []types.Suggestion{{Section: "work_experience", Reason: "replaced a weak verb"}}

	explanation := BuildExplanation(profile, posting, match, suggestions, []string{"Go", "Excel"})

	require.NotNil(t, explanation)
	assert.Contains(t, explanation.GlobalStrategy, "strong fit")
	require.Len(t, explanation.SectionExplanations, 1)
	assert.Len(t, explanation.SkillReorderNotes, 1)
	assert.Empty(t, explanation.GapNotes)
	assert.NotEmpty(t, explanation.KeyPoints)
}

func TestFallback(t *testing.T) {
	match := &types.MatchResult{MatchedRequired: []string{"Go"}, MatchScore: 1.0}

	explanation := Fallback(match)

	assert.Contains(t, explanation.GlobalStrategy, "could not be generated")
	assert.Contains(t, explanation.KeyPoints[0], "unavailable")
	assert.Contains(t, explanation.KeyPoints, "Strong match on: Go")

	assert.NotNil(t, Fallback(nil))
}
