// Package ingestion provides text cleanup and input-source resolution for
// resume and job-posting documents.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// Page-number artifacts left behind by PDF-to-text conversion, e.g.
	// "3", "Page 3", "Page 3 of 5", "- 3 -".
	pageNumberPattern = regexp.MustCompile(`(?i)^(page\s+\d+(\s+of\s+\d+)?|-\s*\d+\s*-|\d+)$`)

	excessiveBlankLines = regexp.MustCompile(`\n{3,}`)
	runsOfSpaces        = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanText normalizes raw document text while preserving line structure:
// line endings become LF, each line is trimmed, page-number artifacts are
// dropped, and runs of 3+ blank lines collapse to 2. Total; never fails.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if pageNumberPattern.MatchString(line) {
			continue
		}
		line = runsOfSpaces.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// ReadFile reads a document from disk and returns its cleaned text.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
