package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"CRLF normalized", "line one\r\nline two", "line one\nline two"},
		{"Bare CR normalized", "line one\rline two", "line one\nline two"},
		{"Lines trimmed", "  padded line  \nnext", "padded line\nnext"},
		{"Page number line dropped", "Experience\n3\nBuilt things", "Experience\n\nBuilt things"},
		{"Page X of Y dropped", "Skills\nPage 2 of 3\nGo, Python", "Skills\n\nGo, Python"},
		{"Dashed page marker dropped", "Summary\n- 4 -\nEngineer", "Summary\n\nEngineer"},
		{"Excess blank lines collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"Runs of spaces collapsed", "Software    Engineer", "Software Engineer"},
		{"Leading and trailing whitespace trimmed", "\n\n  resume  \n\n", "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanTextKeepsNumberedBullets(t *testing.T) {
	// A bare number line is a page artifact, but numbered list items carry text.
	input := "Responsibilities\n1. Build APIs\n2. Review code"
	result := CleanText(input)
	assert.Contains(t, result, "1. Build APIs")
	assert.Contains(t, result, "2. Review code")
}

func TestReadFile(t *testing.T) {
	t.Run("Reads and cleans file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\n\r\nEngineer"), 0644))

		text, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\n\nEngineer", text)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorContains(t, err, "file not found")
	})
}

func TestIsURLBasic(t *testing.T) {
	assert.True(t, IsURL("https://example.com/jobs/123"))
	assert.True(t, IsURL("http://example.com"))
	assert.False(t, IsURL("resume.txt"))
	assert.False(t, IsURL("/tmp/job.txt"))
	assert.False(t, IsURL("ftp://example.com/file"))
}
