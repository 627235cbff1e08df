package rewriting

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeVerbs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Capitalized phrase keeps capitalization",
			input:    "Worked on the billing service",
			expected: "Contributed to the billing service",
		},
		{
			name:     "Lowercase phrase stays lowercase",
			input:    "Also worked on internal tools",
			expected: "Also contributed to internal tools",
		},
		{
			name:     "Multiple upgrades in one bullet",
			input:    "Was responsible for deployments and helped with releases",
			expected: "Managed deployments and supported releases",
		},
		{
			name:     "Single word phrase respects boundaries",
			input:    "Did analysis of candid data",
			expected: "Executed analysis of candid data",
		},
		{
			name:     "No weak phrase leaves text unchanged",
			input:    "Designed the ingestion pipeline",
			expected: "Designed the ingestion pipeline",
		},
		{
			name:     "Phrase inside a word is not replaced",
			input:    "Candidly reviewed the codebase",
			expected: "Candidly reviewed the codebase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := upgradeVerbs(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestUpgradeVerbsReportsChanges(t *testing.T) {
	_, changes := upgradeVerbs("Worked on releases and helped with testing")
	assert.Equal(t, []string{
		`replaced "worked on" with "contributed to"`,
		`replaced "helped with" with "supported"`,
	}, changes)
}

func TestRewriteBulletInjectsMatchedSkill(t *testing.T) {
	injectable := map[string]string{"rest": "REST"}

	rewrite := RewriteBullet("Worked on API development", injectable)

	assert.Equal(t, "Contributed to REST API development", rewrite.Text)
	assert.Equal(t, "Did this work involve REST?", rewrite.VerificationQuestion)
	assert.Len(t, rewrite.Changes, 2)
}

func TestRewriteBulletSkipsSkillAlreadyNamed(t *testing.T) {
	injectable := map[string]string{"rest": "REST", "graphql": "GraphQL"}

	rewrite := RewriteBullet("Built a REST API for partners", injectable)

	// REST is already in the bullet, so GraphQL is the first injectable option
	// not yet named. Insertion happens at the generic "API" token.
	assert.Equal(t, "Built a REST GraphQL API for partners", rewrite.Text)
}

func TestRewriteBulletNoInjectableSkills(t *testing.T) {
	rewrite := RewriteBullet("Maintained the api gateway", map[string]string{})

	assert.Equal(t, "Maintained the api gateway", rewrite.Text)
	assert.Empty(t, rewrite.VerificationQuestion)
}

func TestRewriteBulletOneInjectionPerBullet(t *testing.T) {
	injectable := map[string]string{"react": "React", "postgresql": "PostgreSQL"}

	rewrite := RewriteBullet("Built the frontend and the database layer", injectable)

	assert.Equal(t, "Built the React frontend and the database layer", rewrite.Text)
	assert.Equal(t, "Did this work involve React?", rewrite.VerificationQuestion)
}

func TestRewriteProfile(t *testing.T) {
	profile := &types.Profile{
		Skills: []string{"Python", "REST"},
		Experience: []types.Entry{
			{
				Title: "Engineer",
				DescriptionPoints: []string{
					"Worked on API development",
					"Designed the ingestion pipeline",
				},
			},
		},
		Projects: []types.Entry{
			{
				Title:             "Side Project",
				DescriptionPoints: []string{"Helped with test tooling"},
			},
		},
	}
	match := &types.MatchResult{
		MatchedRequired: []string{"Python", "REST"},
	}

	suggestions := RewriteProfile(profile, match)

	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "Worked on API development", first.Original)
	assert.Equal(t, "Contributed to REST API development", first.Suggested)
	assert.Equal(t, SectionWorkExperience, first.Section)
	assert.Equal(t, `replaced "worked on" with "contributed to"; specified REST for "api"`, first.Reason)
	assert.Equal(t, "Did this work involve REST?", first.VerificationQuestion)
	assert.Equal(t, injectionConfidence, first.Confidence)
	assert.Equal(t, types.StatusPending, first.Status)

	second := suggestions[1]
	assert.Equal(t, SectionProjects, second.Section)
	assert.Equal(t, "Supported test tooling", second.Suggested)

	// Unchanged bullets produce no suggestion, and the profile keeps its text.
	assert.Equal(t, "Designed the ingestion pipeline", profile.Experience[0].DescriptionPoints[1])
}

func TestRewriteProfileConfidenceTiers(t *testing.T) {
	profile := &types.Profile{
		Skills: []string{"Python"},
		Experience: []types.Entry{
			{
				Title: "Analyst",
				DescriptionPoints: []string{
					"Worked on reporting scripts",             // verb upgrade only
					"Was responsible for the backend billing", // verb upgrade + injection site
				},
			},
		},
	}
	match := &types.MatchResult{MatchedRequired: []string{"Python"}}

	suggestions := RewriteProfile(profile, match)
	require.Len(t, suggestions, 2)

	// A rewrite that only rephrases existing text claims nothing new.
	rephrased := suggestions[0]
	assert.Empty(t, rephrased.VerificationQuestion)
	assert.Equal(t, rephraseConfidence, rephrased.Confidence)

	// An injected skill is a new claim: lower confidence, question attached.
	injected := suggestions[1]
	assert.Contains(t, injected.Suggested, "Python")
	assert.NotEmpty(t, injected.VerificationQuestion)
	assert.Equal(t, injectionConfidence, injected.Confidence)
	assert.Less(t, injected.Confidence, 0.8)
}

func TestInjectableSkillsRequiresDeclaration(t *testing.T) {
	profile := &types.Profile{Skills: []string{"Python"}}
	match := &types.MatchResult{
		MatchedRequired:  []string{"Python"},
		MatchedPreferred: []string{"GraphQL"}, // matched by entries, not declared
	}

	injectable := InjectableSkills(profile, match)

	assert.Equal(t, map[string]string{"python": "Python"}, injectable)
}

func TestReorderSkills(t *testing.T) {
	match := &types.MatchResult{
		MatchedRequired:  []string{"Go", "Docker"},
		MatchedPreferred: []string{"Terraform"},
	}
	candidate := []string{"Photoshop", "Terraform", "Docker", "Excel", "Golang"}

	reordered := ReorderSkills(candidate, match)

	assert.Equal(t, []string{"Docker", "Golang", "Terraform", "Photoshop", "Excel"}, reordered)
	assert.Len(t, reordered, len(candidate))
}

func TestCleanWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Built  services  ", "Built services"},
		{"Shipped features , fast", "Shipped features, fast"},
		{"Reviewed code .", "Reviewed code."},
		{"Clean already.", "Clean already."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanWhitespace(tt.input))
	}
}
