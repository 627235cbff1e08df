package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/sections"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// titleScanLines bounds the fallback search for a role title.
	titleScanLines = 10
	// companyScanChars bounds the inline "X is hiring" company search.
	companyScanChars = 500
	// longBulletLength marks bullets too long to keep verbatim; only lexicon
	// hits are extracted from them.
	longBulletLength = 100
	// maxVerbatimSkillLength is the longest unrecognized bullet fragment
	// kept verbatim as a candidate skill name.
	maxVerbatimSkillLength = 50
	// maxResponsibilities caps the responsibility list.
	maxResponsibilities = 10
	// maxQualifications caps the qualification list.
	maxQualifications = 10
)

var (
	titleLabelPattern   = regexp.MustCompile(`(?im)^(?:position|role|job title|title)\s*:\s*(.+)$`)
	companyLabelPattern = regexp.MustCompile(`(?im)^company\s*:\s*(.+)$`)
	aboutHeaderPattern  = regexp.MustCompile(`(?im)^about\s+([A-Z][A-Za-z0-9&.' -]{1,40}?)\s*:?\s*$`)
	hiringPattern       = regexp.MustCompile(`(?m)(?:^|\.[ \t]+)([A-Z][A-Za-z0-9&.']*(?:[ \t][A-Z][A-Za-z0-9&.']*){0,3})[ \t]+is[ \t]+(?:hiring|looking|seeking|searching)`)

	jobTitleShapePattern = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|scientist|architect|consultant|specialist|administrator|lead|director)\b`)

	// Inline skill phrasing caught outside located sections, for postings
	// with weak structure.
	mustHavePattern      = regexp.MustCompile(`(?i)must have (?:experience (?:with|in) )?([A-Za-z0-9+#./ -]{2,40}?)(?:[.,;]|$)`)
	isRequiredPattern    = regexp.MustCompile(`(?i)(?:^|[.;] )([A-Za-z0-9+#./ -]{2,40}?) (?:experience )?is required`)
	niceToHavePattern    = regexp.MustCompile(`(?i)nice to have:?\s+([A-Za-z0-9+#./, -]{2,60})`)
	isAPlusPattern       = regexp.MustCompile(`(?i)(?:^|[.;] )([A-Za-z0-9+#./ -]{2,40}?) is a plus`)
	ideallyPattern       = regexp.MustCompile(`(?i)ideally,?\s+(?:you have |with )?([A-Za-z0-9+#./ -]{2,60})`)
	experiencePrefixes   = regexp.MustCompile(`(?i)^(?:\d\+?\s+years?(?: of)?\s+)?(?:hands-on\s+|proven\s+|strong\s+|solid\s+)?(?:experience (?:with|in|using)|proficiency (?:with|in)|knowledge of|familiarity with|expertise in|background in)\s+`)
	degreePattern        = regexp.MustCompile(`(?i)(?:bachelor|master|phd|doctorate|associate)(?:'s)?(?: degree)?(?: in [A-Za-z ]{2,40})?`)
	yearsPattern         = regexp.MustCompile(`(?i)\d+\+?\s+years?(?: of)?(?: relevant| professional| industry)? experience(?: (?:in|with) [A-Za-z0-9+#./ ]{2,40})?`)
	certificationPattern = regexp.MustCompile(`(?i)(?:aws|gcp|azure)? ?certified [A-Za-z -]{3,40}|(?:\b(?:pmp|cissp|ckad|cka)\b)`)
)

// nonCompanyAboutSubjects are "About X" headers that introduce the role, not
// the employer.
var nonCompanyAboutSubjects = map[string]bool{
	"us":           true,
	"you":          true,
	"the role":     true,
	"this role":    true,
	"the position": true,
	"the job":      true,
	"the team":     true,
}

// implicitExpectations maps culture-signal phrases to their practical meaning.
var implicitExpectations = []struct {
	Phrase  string
	Meaning string
}{
	{"wear many hats", "Broad responsibilities beyond the job title"},
	{"wears many hats", "Broad responsibilities beyond the job title"},
	{"fast-paced", "High delivery pace and frequent context switching"},
	{"fast paced", "High delivery pace and frequent context switching"},
	{"self-starter", "Expected to work with minimal direction"},
	{"self starter", "Expected to work with minimal direction"},
	{"startup environment", "Ambiguity and shifting priorities are the norm"},
	{"work hard play hard", "Long hours are likely expected"},
	{"like a family", "Strong culture emphasis, possibly blurred work-life boundaries"},
	{"rockstar", "Inflated expectations for a single role"},
	{"ninja", "Inflated expectations for a single role"},
	{"10x", "Inflated expectations for a single role"},
	{"comfortable with ambiguity", "Comfort with unclear requirements expected"},
	{"take ownership", "End-to-end accountability expected"},
	{"sense of ownership", "End-to-end accountability expected"},
}

// AnalyzeJobPosting converts raw job-posting text into a structured posting.
func AnalyzeJobPosting(rawText string) (*types.JobPosting, error) {
	cleaned := ingestion.CleanText(rawText)
	if cleaned == "" {
		return nil, &ParseError{Message: "job posting text is empty after cleanup"}
	}

	posting := &types.JobPosting{
		Title:   extractJobTitle(cleaned),
		Company: extractCompany(cleaned),
		RawText: rawText,
	}

	sectioned := sections.Segment(cleaned, sections.JobPostingTable)

	required := extractSectionSkills(sectioned[sections.Required])
	preferred := extractSectionSkills(sectioned[sections.Preferred])

	// Inline phrasing is scanned over the full text to catch postings whose
	// structure the segmenter could not locate.
	required = append(required, extractInlineRequired(cleaned)...)
	preferred = append(preferred, extractInlinePreferred(cleaned)...)

	posting.RequiredSkills = dedupeSkills(required, nil)
	posting.PreferredSkills = dedupeSkills(preferred, posting.RequiredSkills)
	posting.Responsibilities = extractResponsibilities(sectioned[sections.Responsibilities])
	posting.Qualifications = extractQualifications(cleaned)
	posting.ImplicitExpectations = extractImplicitExpectations(cleaned)

	return posting, nil
}

// extractJobTitle finds the role title: an explicit label first, then the
// first top line shaped like a job title, then any short 2-8 word line.
func extractJobTitle(text string) string {
	if m := titleLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	lines := strings.Split(text, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}

	var fallback string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || sections.IsHeader(line, sections.JobPostingTable) {
			continue
		}
		if companyLabelPattern.MatchString(line) || aboutHeaderPattern.MatchString(line) {
			continue
		}
		words := len(strings.Fields(line))
		if words < 2 || words > 8 || len(line) > 80 {
			continue
		}
		if jobTitleShapePattern.MatchString(line) {
			return line
		}
		if fallback == "" {
			fallback = line
		}
	}
	return fallback
}

// extractCompany finds the employer name: explicit label, "About {Company}"
// header, then "{Company} is hiring" near the top of the posting.
func extractCompany(text string) string {
	if m := companyLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, m := range aboutHeaderPattern.FindAllStringSubmatch(text, -1) {
		subject := strings.TrimSpace(m[1])
		if !nonCompanyAboutSubjects[strings.ToLower(subject)] {
			return subject
		}
	}

	head := text
	if len(head) > companyScanChars {
		head = head[:companyScanChars]
	}
	if m := hiringPattern.FindStringSubmatch(head); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}

// extractSectionSkills pulls skill names from a located section's bullets.
// Long bullets contribute only lexicon hits; short unrecognized bullets are
// kept verbatim after stripping "experience with"-style prefixes.
func extractSectionSkills(content string) []string {
	if content == "" {
		return nil
	}

	var found []string
	for _, bullet := range sectionBullets(content) {
		if len(bullet) > longBulletLength {
			found = append(found, skills.FindKnown(bullet)...)
			continue
		}
		if known := skills.FindKnown(bullet); len(known) > 0 {
			found = append(found, known...)
			continue
		}
		candidate := strings.TrimSpace(experiencePrefixes.ReplaceAllString(bullet, ""))
		candidate = strings.TrimRight(candidate, ".")
		if len(candidate) >= 2 && len(candidate) <= maxVerbatimSkillLength {
			found = append(found, candidate)
		}
	}
	return found
}

// sectionBullets returns the section's bullet lines with markers stripped;
// if the section has no bullets, every non-empty line is treated as one.
func sectionBullets(content string) []string {
	var bullets, bare []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isBulletLine(line) {
			bullets = append(bullets, stripBulletMarker(line))
		} else {
			bare = append(bare, line)
		}
	}
	if len(bullets) > 0 {
		return bullets
	}
	return bare
}

func extractInlineRequired(text string) []string {
	var found []string
	for _, pattern := range []*regexp.Regexp{mustHavePattern, isRequiredPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			found = append(found, lexiconOrVerbatim(m[1])...)
		}
	}
	return found
}

func extractInlinePreferred(text string) []string {
	var found []string
	for _, pattern := range []*regexp.Regexp{niceToHavePattern, isAPlusPattern, ideallyPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			found = append(found, lexiconOrVerbatim(m[1])...)
		}
	}
	return found
}

// lexiconOrVerbatim prefers lexicon hits within a captured phrase, falling
// back to the trimmed phrase itself when nothing is recognized.
func lexiconOrVerbatim(phrase string) []string {
	if known := skills.FindKnown(phrase); len(known) > 0 {
		return known
	}
	phrase = strings.TrimSpace(experiencePrefixes.ReplaceAllString(phrase, ""))
	phrase = strings.Trim(phrase, ".,; ")
	if len(phrase) >= 2 && len(phrase) <= maxVerbatimSkillLength {
		return []string{phrase}
	}
	return nil
}

// dedupeSkills removes canonical duplicates preserving first-seen order and
// casing; anything canonically present in exclude is dropped too.
func dedupeSkills(skillList, exclude []string) []string {
	seen := skills.CanonicalSet(exclude)
	var deduped []string
	for _, skill := range skillList {
		token := skills.Canonicalize(skill)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		deduped = append(deduped, skill)
	}
	return deduped
}

// extractResponsibilities takes bullet lines (or, failing that, sufficiently
// long free lines) from the responsibilities section, capped.
func extractResponsibilities(content string) []string {
	if content == "" {
		return nil
	}
	var responsibilities []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isBulletLine(line) {
			if stripped := stripBulletMarker(line); len(stripped) > 10 {
				responsibilities = append(responsibilities, stripped)
			}
		} else if len(line) > 20 {
			responsibilities = append(responsibilities, line)
		}
		if len(responsibilities) == maxResponsibilities {
			break
		}
	}
	return responsibilities
}

// extractQualifications captures degree, years-of-experience, and
// certification phrases from the full posting text.
func extractQualifications(text string) []string {
	var qualifications []string
	seen := make(map[string]bool)

	for _, pattern := range []*regexp.Regexp{degreePattern, yearsPattern, certificationPattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			match = strings.TrimSpace(match)
			key := strings.ToLower(match)
			if match == "" || seen[key] {
				continue
			}
			seen[key] = true
			qualifications = append(qualifications, match)
			if len(qualifications) == maxQualifications {
				return qualifications
			}
		}
	}
	return qualifications
}

// extractImplicitExpectations detects culture-signal phrases, deduplicated
// by meaning.
func extractImplicitExpectations(text string) []string {
	lower := strings.ToLower(text)
	var meanings []string
	seen := make(map[string]bool)
	for _, expectation := range implicitExpectations {
		if !strings.Contains(lower, expectation.Phrase) {
			continue
		}
		if seen[expectation.Meaning] {
			continue
		}
		seen[expectation.Meaning] = true
		meanings = append(meanings, expectation.Meaning)
	}
	return meanings
}
