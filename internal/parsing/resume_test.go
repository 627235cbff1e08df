package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | 555-123-4567 | San Francisco, CA
linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with eight years of experience.
- Focused on reliability and developer tooling.

Work Experience
Software Engineer | Acme Corp | Jan 2019 - Mar 2023
- Built REST APIs in Go
- Worked on deployment pipelines

Junior Developer
Globex | 2016 - 2019
- Maintained Python services

Skills
Languages: Go, Python, SQL
Tools: Docker, Kubernetes

Education
BS Computer Science | State University | 2012 - 2016

Projects
Side Project
- Wrote a static site generator in Go`

func TestParseResume(t *testing.T) {
	profile, err := ParseResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Contact.Email)
	assert.Equal(t, "555-123-4567", profile.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", profile.Contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", profile.Contact.GitHub)
	assert.Equal(t, "San Francisco, CA", profile.Contact.Location)

	assert.Equal(t,
		"Backend engineer with eight years of experience. Focused on reliability and developer tooling.",
		profile.Summary)

	assert.Equal(t, []string{"Go", "Python", "SQL", "Docker", "Kubernetes"}, profile.Skills)

	require.Len(t, profile.Experience, 2)
	first := profile.Experience[0]
	assert.Equal(t, "Software Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Organization)
	assert.Equal(t, "Jan 2019 - Mar 2023", first.DateRange)
	assert.Equal(t, []string{"Built REST APIs in Go", "Worked on deployment pipelines"}, first.DescriptionPoints)
	assert.Nil(t, first.Analysis, "analysis is absent before the matching stage")

	second := profile.Experience[1]
	assert.Equal(t, "Junior Developer", second.Title)
	assert.Equal(t, "Globex", second.Organization)
	assert.Equal(t, "2016 - 2019", second.DateRange)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "BS Computer Science", profile.Education[0].Title)
	assert.Equal(t, "State University", profile.Education[0].Organization)

	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "Side Project", profile.Projects[0].Title)

	assert.Equal(t, sampleResume, profile.RawText, "raw text is retained for diagnostics")
}

func TestParseResumeEmpty(t *testing.T) {
	_, err := ParseResume("   \n\n  ")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseResumeSkillDedup(t *testing.T) {
	profile, err := ParseResume(`Jane Doe
jane@example.com

Skills
python, Go, Python, go, SQL`)
	require.NoError(t, err)

	// Case variants collapse; first-seen casing wins.
	assert.Equal(t, []string{"python", "Go", "SQL"}, profile.Skills)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"Name on first line", []string{"Jane Doe", "jane@example.com"}, "Jane Doe"},
		{"Email skipped", []string{"jane@example.com", "Jane Doe"}, "Jane Doe"},
		{"URL skipped", []string{"linkedin.com/in/janedoe", "Jane Doe"}, "Jane Doe"},
		{"Header skipped", []string{"Summary", "Jane Doe"}, "Jane Doe"},
		{"Phone-heavy line skipped", []string{"555-123-4567", "Jane Doe"}, "Jane Doe"},
		{"Too many words skipped", []string{"Backend engineer who loves building reliable systems", "Jane Doe"}, "Jane Doe"},
		{"No candidate", []string{"jane@example.com", "555-123-4567"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractName(tt.lines))
		})
	}
}

func TestParseSkillListFiltersFragments(t *testing.T) {
	skills := parseSkillList("Skills\nGo, x, Python, technologies, this fragment is far too long to plausibly be a single skill name")
	assert.Equal(t, []string{"Go", "Python"}, skills)
}
