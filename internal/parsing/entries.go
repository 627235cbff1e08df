package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// maxDateOnlyLength separates standalone date-range lines from prose
	// that merely mentions a date range.
	maxDateOnlyLength = 30
	// maxTitleLength rejects paragraph lines as entry-title candidates.
	maxTitleLength = 100
	// minWrappedLineLength treats shorter stray lines as noise instead of
	// wrapped bullet continuations.
	minWrappedLineLength = 20
	// headerScanLines is how many lines after the title are checked for
	// organization and date information.
	headerScanLines = 3
)

var (
	bulletMarkerPattern = regexp.MustCompile(`^\s*(?:[-•*▪◦‣⁃]|\d+[.)])\s+`)

	monthName = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`
	datePoint = `(?:` + monthName + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	dateEnd   = `(?:` + monthName + `\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current|now)`

	dateRangePattern = regexp.MustCompile(`(?i)` + datePoint + `\s*(?:[-–—]|to)\s*` + dateEnd)
)

// parseEntries groups a section's lines into entries using the shared
// title/organization/date/bullet heuristics.
func parseEntries(content string) []types.Entry {
	if content == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var entries []types.Entry
	for _, group := range groupEntryLines(lines) {
		if entry, ok := buildEntry(group); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// groupEntryLines splits section lines into per-entry groups. A new group
// begins at a title-candidate line, unless the line looks like the
// organization/date line of the entry just started.
func groupEntryLines(lines []string) [][]string {
	var groups [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for _, line := range lines {
		if len(current) == 0 {
			current = append(current, line)
			continue
		}
		if isBulletLine(line) || isDateOnlyLine(line) || !isTitleCandidate(line) {
			current = append(current, line)
			continue
		}
		// Continuation: a second line carrying a separator or date range is
		// the current entry's organization/date line, not a new title.
		if len(current) == 1 && (strings.Contains(line, "|") || dateRangePattern.MatchString(line)) {
			current = append(current, line)
			continue
		}
		flush()
		current = append(current, line)
	}
	flush()

	return groups
}

// buildEntry assembles one entry from its grouped lines. Returns false when
// the group parsed into nothing usable.
func buildEntry(group []string) (types.Entry, bool) {
	entry := types.Entry{Title: stripBulletMarker(group[0])}

	// Pipe-delimited title lines carry organization and date inline.
	if strings.Contains(entry.Title, "|") {
		parts := splitAndTrim(entry.Title, "|")
		entry.Title = parts[0]
		for _, part := range parts[1:] {
			if dateRangePattern.MatchString(part) && entry.DateRange == "" {
				entry.DateRange = part
			} else if entry.Organization == "" {
				entry.Organization = part
			}
		}
	}

	var bullets []string
	for i, line := range group[1:] {
		if !isBulletLine(line) && i < headerScanLines && consumeHeaderLine(&entry, line) {
			continue
		}

		if isBulletLine(line) {
			bullets = append(bullets, stripBulletMarker(line))
			continue
		}

		// A long bare line is a wrapped continuation of the previous bullet,
		// or a bullet whose marker was lost in text conversion.
		if len(line) >= minWrappedLineLength {
			if len(bullets) > 0 {
				bullets[len(bullets)-1] += " " + line
			} else {
				bullets = append(bullets, line)
			}
		}
	}
	entry.DescriptionPoints = bullets

	if entry.Title == "" {
		return types.Entry{}, false
	}
	// Title equal to organization indicates the grouping misfired.
	if entry.Organization != "" && strings.EqualFold(entry.Title, entry.Organization) {
		return types.Entry{}, false
	}
	return entry, true
}

// consumeHeaderLine tries to interpret a line just below the title as
// organization and/or date information. Returns true if the line was used.
func consumeHeaderLine(entry *types.Entry, line string) bool {
	if strings.Contains(line, "|") {
		used := false
		for _, part := range splitAndTrim(line, "|") {
			if dateRangePattern.MatchString(part) && entry.DateRange == "" {
				entry.DateRange = part
				used = true
			} else if entry.Organization == "" && part != "" && len(part) < maxTitleLength {
				entry.Organization = part
				used = true
			}
		}
		return used
	}

	if match := dateRangePattern.FindString(line); match != "" {
		if entry.DateRange == "" {
			entry.DateRange = match
		}
		remainder := strings.Trim(strings.Replace(line, match, "", 1), " \t|,-–—")
		if entry.Organization == "" && remainder != "" {
			entry.Organization = remainder
		}
		return true
	}

	return false
}

func isBulletLine(line string) bool {
	return bulletMarkerPattern.MatchString(line)
}

func isDateOnlyLine(line string) bool {
	return len(line) < maxDateOnlyLength && dateRangePattern.MatchString(line)
}

func isTitleCandidate(line string) bool {
	if isBulletLine(line) || isDateOnlyLine(line) || len(line) >= maxTitleLength {
		return false
	}
	// Titles start capitalized; a lowercase first letter indicates a wrapped
	// continuation of the previous bullet.
	return !startsLowercase(line)
}

func startsLowercase(line string) bool {
	for _, r := range line {
		return r >= 'a' && r <= 'z'
	}
	return false
}

func stripBulletMarker(line string) string {
	return strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(line, ""))
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed = append(trimmed, strings.TrimSpace(part))
	}
	return trimmed
}
