// Package sections splits cleaned document text into labeled regions using
// ordered header-phrase tables.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Type identifies the kind of section a header introduces.
type Type string

// Section types recognized across resumes and job postings.
const (
	Summary    Type = "summary"
	Experience Type = "experience"
	Education  Type = "education"
	Skills     Type = "skills"
	Projects   Type = "projects"

	Required         Type = "required"
	Preferred        Type = "preferred"
	Responsibilities Type = "responsibilities"

	// Skip marks boilerplate sections (benefits, culture, legal). Their
	// headers still bound the preceding section, but their content is
	// discarded from the result.
	Skip Type = "skip"
)

// HeaderGroup associates a section type with the header phrases that denote it.
type HeaderGroup struct {
	Type    Type
	pattern *regexp.Regexp
}

// NewHeaderGroup builds a group whose phrases match entire lines,
// case-insensitively, with an optional trailing colon.
func NewHeaderGroup(sectionType Type, phrases ...string) HeaderGroup {
	joined := strings.Join(phrases, "|")
	return HeaderGroup{
		Type:    sectionType,
		pattern: regexp.MustCompile(`(?im)^[ \t]*(?:` + joined + `)[ \t]*:?[ \t]*$`),
	}
}

type headerMatch struct {
	sectionType Type
	start       int
	end         int
}

// Segment locates section headers and returns each discovered section's
// content, keyed by type. For each type only the first header occurrence is
// kept; a section's content runs from the end of its header to the start of
// the next retained header, or the end of the document. Undiscovered sections
// are absent from the result; callers treat a missing key as "no content".
func Segment(text string, table []HeaderGroup) map[Type]string {
	var matches []headerMatch
	for _, group := range table {
		for _, loc := range group.pattern.FindAllStringIndex(text, -1) {
			matches = append(matches, headerMatch{
				sectionType: group.Type,
				start:       loc[0],
				end:         loc[1],
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	// Keep only the first occurrence of each type; later duplicates neither
	// produce content nor bound their neighbors.
	seen := make(map[Type]bool)
	kept := matches[:0]
	for _, m := range matches {
		if seen[m.sectionType] {
			continue
		}
		seen[m.sectionType] = true
		kept = append(kept, m)
	}

	result := make(map[Type]string)
	for i, m := range kept {
		contentEnd := len(text)
		if i+1 < len(kept) {
			contentEnd = kept[i+1].start
		}
		if m.sectionType == Skip {
			continue
		}
		content := strings.TrimSpace(text[m.end:contentEnd])
		if content != "" {
			result[m.sectionType] = content
		}
	}

	return result
}

// IsHeader reports whether the line on its own would be recognized as a
// section header by any group in the table.
func IsHeader(line string, table []HeaderGroup) bool {
	for _, group := range table {
		if group.pattern.MatchString(line) {
			return true
		}
	}
	return false
}
