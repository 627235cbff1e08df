// Package parsing extracts structured profiles and job postings from raw
// document text using heuristic segmentation and pattern tables.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/sections"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// contactScanLines bounds how deep into the document contact details are
	// expected to appear.
	contactScanLines = 15
	// nameScanLines bounds the candidate-name search.
	nameScanLines = 5
	// maxNameLength rejects sentence-like lines as name candidates.
	maxNameLength = 50
	// maxNameDigitRatio rejects phone-number-ish lines as name candidates.
	maxNameDigitRatio = 0.3
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	// City, ST or City, Country on its own segment of a header line
	locationPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)?,\s*(?:[A-Z]{2}|[A-Z][a-zA-Z]+)\b`)
	urlishPattern   = regexp.MustCompile(`(?i)(https?://|www\.|linkedin\.com|github\.com)`)

	// Category labels inside skills sections, e.g. "Languages: Go, Python"
	categoryLabelPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z /&]{0,30}:\s*`)
	skillSplitPattern    = regexp.MustCompile(`[,|;\n]`)
)

// residualCategoryWords are fragments left behind when a category label was
// written without a colon; they are never skills themselves.
var residualCategoryWords = map[string]bool{
	"skills":       true,
	"tools":        true,
	"technologies": true,
	"languages":    true,
	"frameworks":   true,
	"other":        true,
}

// ParseResume converts raw resume text into a structured profile.
func ParseResume(rawText string) (*types.Profile, error) {
	cleaned := ingestion.CleanText(rawText)
	if cleaned == "" {
		return nil, &ParseError{Message: "resume text is empty after cleanup"}
	}

	lines := strings.Split(cleaned, "\n")

	profile := &types.Profile{
		Name:    extractName(lines),
		Contact: extractContactInfo(lines),
		RawText: rawText,
	}

	sectioned := sections.Segment(cleaned, sections.ResumeTable)

	profile.Summary = parseSummary(sectioned[sections.Summary])
	profile.Experience = parseEntries(sectioned[sections.Experience])
	profile.Education = parseEntries(sectioned[sections.Education])
	profile.Projects = parseEntries(sectioned[sections.Projects])
	profile.Skills = parseSkillList(sectioned[sections.Skills])

	return profile, nil
}

// extractContactInfo pulls contact fields from the top of the document.
func extractContactInfo(lines []string) types.ContactInfo {
	scan := lines
	if len(scan) > contactScanLines {
		scan = scan[:contactScanLines]
	}
	header := strings.Join(scan, "\n")

	contact := types.ContactInfo{
		Email:    emailPattern.FindString(header),
		LinkedIn: linkedinPattern.FindString(header),
		GitHub:   githubPattern.FindString(header),
	}

	// Phone detection line by line, skipping lines already claimed by other
	// fields so a LinkedIn vanity number is not mistaken for a phone.
	for _, line := range scan {
		if emailPattern.MatchString(line) && phonePattern.FindString(line) == "" {
			continue
		}
		if urlishPattern.MatchString(line) {
			continue
		}
		if phone := phonePattern.FindString(line); phone != "" {
			contact.Phone = strings.TrimSpace(phone)
			break
		}
	}

	for _, line := range scan {
		if urlishPattern.MatchString(line) {
			continue
		}
		if loc := locationPattern.FindString(line); loc != "" {
			contact.Location = loc
			break
		}
	}

	return contact
}

// extractName picks the candidate name from the top lines: short, mostly
// alphabetic, 1-5 words, and not an email, URL, or section header.
func extractName(lines []string) string {
	scan := lines
	if len(scan) > nameScanLines {
		scan = scan[:nameScanLines]
	}

	for _, line := range scan {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > maxNameLength {
			continue
		}
		if emailPattern.MatchString(line) || urlishPattern.MatchString(line) {
			continue
		}
		if sections.IsHeader(line, sections.ResumeTable) {
			continue
		}
		if digitRatio(line) > maxNameDigitRatio {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 5 {
			return line
		}
	}
	return ""
}

func digitRatio(s string) float64 {
	if s == "" {
		return 0
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return float64(digits) / float64(len(s))
}

// parseSummary joins the summary section into one paragraph with bullet
// markers stripped.
func parseSummary(content string) string {
	if content == "" {
		return ""
	}
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		line = stripBulletMarker(strings.TrimSpace(line))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// parseSkillList splits a skills section into individual skill names:
// category labels and bullet markers stripped, fragments filtered, and
// case-insensitively deduplicated preserving first-seen casing.
func parseSkillList(content string) []string {
	if content == "" {
		return nil
	}

	var stripped []string
	for _, line := range strings.Split(content, "\n") {
		line = stripBulletMarker(strings.TrimSpace(line))
		line = categoryLabelPattern.ReplaceAllString(line, "")
		stripped = append(stripped, line)
	}

	var skillList []string
	seen := make(map[string]bool)
	for _, fragment := range skillSplitPattern.Split(strings.Join(stripped, "\n"), -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) < 2 || len(fragment) > 50 {
			continue
		}
		if residualCategoryWords[strings.ToLower(fragment)] {
			continue
		}
		key := strings.ToLower(fragment)
		if seen[key] {
			continue
		}
		seen[key] = true
		skillList = append(skillList, fragment)
	}
	return skillList
}
