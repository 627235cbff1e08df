package matching

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name             string
		candidate        []string
		required         []string
		preferred        []string
		expectedScore    float64
		expectedMatched  []string
		expectedMissing  []string
		expectedExtras   []string
		expectedMatchedP []string
	}{
		{
			name:            "Half of required matched",
			candidate:       []string{"Python", "AWS"},
			required:        []string{"Python", "Docker"},
			expectedScore:   0.5,
			expectedMatched: []string{"Python"},
			expectedMissing: []string{"Docker"},
			expectedExtras:  []string{"AWS"},
		},
		{
			name:          "Empty required list scores 1.0",
			candidate:     []string{"Python"},
			required:      nil,
			expectedScore: 1.0,
			expectedExtras: []string{"Python"},
		},
		{
			name:            "Lexical variants match canonically",
			candidate:       []string{"Golang", "ReactJS"},
			required:        []string{"Go", "React.js"},
			expectedScore:   1.0,
			expectedMatched: []string{"Go", "React.js"},
		},
		{
			name:             "Preferred matched independently",
			candidate:        []string{"Python", "Kubernetes"},
			required:         []string{"Python"},
			preferred:        []string{"Kubernetes", "Terraform"},
			expectedScore:    1.0,
			expectedMatched:  []string{"Python"},
			expectedMatchedP: []string{"Kubernetes"},
		},
		{
			name:            "Duplicate required variants counted once",
			candidate:       []string{"Python"},
			required:        []string{"Python", "python 3", "Docker"},
			expectedScore:   0.5,
			expectedMatched: []string{"Python"},
			expectedMissing: []string{"Docker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := &types.JobPosting{
				RequiredSkills:  tt.required,
				PreferredSkills: tt.preferred,
			}
			result := MatchSkills(tt.candidate, posting)

			assert.InDelta(t, tt.expectedScore, result.MatchScore, 1e-9)
			assert.Equal(t, tt.expectedMatched, result.MatchedRequired)
			assert.Equal(t, tt.expectedMissing, result.MissingRequired)
			assert.Equal(t, tt.expectedExtras, result.ExtraSkills)
			assert.Equal(t, tt.expectedMatchedP, result.MatchedPreferred)
		})
	}
}

func TestMatchSkillsPartitionInvariant(t *testing.T) {
	posting := &types.JobPosting{
		RequiredSkills: []string{"Go", "Golang", "Python", "Docker", "K8s", "Kubernetes"},
	}
	result := MatchSkills([]string{"go", "kubernetes"}, posting)

	// Matched and missing, canonicalized, exactly partition the required set.
	assert.Len(t, result.MatchedRequired, 2)
	assert.Len(t, result.MissingRequired, 2)
	assert.InDelta(t, 0.5, result.MatchScore, 1e-9)
}

func TestMatchScoreBounds(t *testing.T) {
	posting := &types.JobPosting{RequiredSkills: []string{"Go"}}

	result := MatchSkills(nil, posting)
	assert.GreaterOrEqual(t, result.MatchScore, 0.0)
	assert.LessOrEqual(t, result.MatchScore, 1.0)
	assert.True(t, result.Tier() == "weak")
}

func TestAnnotateProfile(t *testing.T) {
	profile := &types.Profile{
		Skills: []string{"Python", "Go"},
		Experience: []types.Entry{
			{
				Title:             "Software Engineer",
				Organization:      "Acme",
				DescriptionPoints: []string{"Built Python services", "Deployed with Docker"},
			},
			{
				Title:             "Barista",
				Organization:      "Cafe",
				DescriptionPoints: []string{"Served coffee"},
			},
		},
	}
	posting := &types.JobPosting{
		RequiredSkills:  []string{"Python", "Docker", "Kubernetes"},
		PreferredSkills: []string{"AWS"},
	}
	match := MatchSkills(profile.Skills, posting)
	annotated := AnnotateProfile(profile, posting, match)

	// Original untouched.
	assert.Nil(t, profile.Experience[0].Analysis)

	engineer := annotated.Experience[0].Analysis
	require.NotNil(t, engineer)
	assert.ElementsMatch(t, []string{"Python", "Docker"}, engineer.MatchedSkills)
	assert.InDelta(t, 0.5, engineer.RelevanceScore, 1e-9) // 2 of 4 posting skills
	assert.Contains(t, engineer.Explanation, "Highly relevant")
	assert.Contains(t, engineer.Explanation, "Python")

	// Kubernetes is a plausible gap for a technical entry.
	assert.Contains(t, engineer.PlausibleGaps, "Kubernetes")

	barista := annotated.Experience[1].Analysis
	require.NotNil(t, barista)
	assert.Empty(t, barista.MatchedSkills)
	assert.Equal(t, 0.0, barista.RelevanceScore)
	assert.Contains(t, barista.Explanation, "Less directly relevant")
	assert.NotContains(t, barista.PlausibleGaps, "Kubernetes",
		"technical gaps are not suggested for non-technical entries")
}

func TestAnnotateProfileWordBoundaries(t *testing.T) {
	profile := &types.Profile{
		Experience: []types.Entry{
			{Title: "Manager", DescriptionPoints: []string{"Kept things going forward"}},
		},
	}
	posting := &types.JobPosting{RequiredSkills: []string{"Go"}}
	match := MatchSkills(nil, posting)

	annotated := AnnotateProfile(profile, posting, match)
	analysis := annotated.Experience[0].Analysis
	require.NotNil(t, analysis)
	assert.Empty(t, analysis.MatchedSkills, "substring inside 'going' must not count as a mention")
}

func TestAnnotateProfileNoPostingSkills(t *testing.T) {
	profile := &types.Profile{
		Experience: []types.Entry{{Title: "Engineer", DescriptionPoints: []string{"Built Go services"}}},
	}
	posting := &types.JobPosting{}
	match := MatchSkills(nil, posting)

	annotated := AnnotateProfile(profile, posting, match)
	assert.Equal(t, 0.0, annotated.Experience[0].Analysis.RelevanceScore)
}

func TestEntryExplanationCapsMentions(t *testing.T) {
	explanation := entryExplanation(0.5, []string{"A1", "B2", "C3", "D4", "E5", "F6"})
	assert.Contains(t, explanation, "A1, B2, C3, D4")
	assert.Contains(t, explanation, "(+2 more)")
	assert.NotContains(t, explanation, "E5")
}
