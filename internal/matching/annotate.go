package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// maxGapsPerEntry caps plausible-gap annotations per entry.
	maxGapsPerEntry = 5
	// maxMentionedSkills caps skill names quoted in an entry explanation.
	maxMentionedSkills = 4

	// Relevance tiers for entry explanations.
	highlyRelevantThreshold     = 0.3
	moderatelyRelevantThreshold = 0.1
)

// technicalRoleWords signal a technical entry when found in its title.
var technicalRoleWords = []string{
	"engineer", "developer", "programmer", "architect", "devops", "sre",
	"analyst", "scientist", "administrator", "technical", "software", "data",
}

// technicalActivityWords signal technical work when found in bullet text.
var technicalActivityWords = []string{
	"built", "developed", "implemented", "deployed", "coded", "programmed",
	"designed", "automated", "integrated", "migrated", "engineered",
	"debugged", "maintained", "launched", "optimized", "refactored",
}

// softSkills are broadly plausible in any entry regardless of its content.
var softSkills = map[string]bool{
	"leadership":         true,
	"management":         true,
	"communication":      true,
	"teamwork":           true,
	"collaboration":      true,
	"agile":              true,
	"scrum":              true,
	"project management": true,
}

// AnnotateProfile returns a deep copy of the profile with every
// experience, education, and project entry carrying an EntryAnalysis.
// The original profile is never mutated.
func AnnotateProfile(profile *types.Profile, posting *types.JobPosting, match *types.MatchResult) *types.Profile {
	annotated := profile.Clone()

	jobSkills := posting.AllSkills()
	totalJobSkills := len(skills.CanonicalSet(jobSkills))

	for _, entryList := range annotated.AllEntries() {
		for i := range entryList {
			entryList[i].Analysis = analyzeEntry(&entryList[i], jobSkills, totalJobSkills, match.MissingRequired)
		}
	}

	return annotated
}

// analyzeEntry computes matched skills, a relevance score, plausible gaps,
// and a templated explanation for one entry.
func analyzeEntry(entry *types.Entry, jobSkills []string, totalJobSkills int, missingRequired []string) *types.EntryAnalysis {
	text := entryText(entry)

	var matched []string
	seen := make(map[string]bool)
	for _, skill := range jobSkills {
		token := skills.Canonicalize(skill)
		if token == "" || seen[token] {
			continue
		}
		if skills.ContainsToken(text, skill) || skills.ContainsToken(text, token) {
			seen[token] = true
			matched = append(matched, skill)
		}
	}

	relevance := 0.0
	if totalJobSkills > 0 {
		relevance = clamp01(float64(len(matched)) / float64(totalJobSkills))
	}

	return &types.EntryAnalysis{
		MatchedSkills:  matched,
		RelevanceScore: relevance,
		PlausibleGaps:  plausibleGaps(entry, missingRequired),
		Explanation:    entryExplanation(relevance, matched),
	}
}

// entryText concatenates an entry's searchable text.
func entryText(entry *types.Entry) string {
	parts := make([]string, 0, len(entry.DescriptionPoints)+2)
	parts = append(parts, entry.Title, entry.Organization)
	parts = append(parts, entry.DescriptionPoints...)
	return strings.ToLower(strings.Join(parts, " "))
}

// plausibleGaps filters the missing-required skills down to those that could
// believably belong in this entry: soft skills always pass; technical skills
// pass only when the entry itself shows a technical signal. The heuristic is
// deliberately conservative on non-technical entries.
func plausibleGaps(entry *types.Entry, missingRequired []string) []string {
	if len(missingRequired) == 0 {
		return nil
	}

	title := strings.ToLower(entry.Title)
	bullets := strings.ToLower(strings.Join(entry.DescriptionPoints, " "))

	technicalEntry := containsAny(title, technicalRoleWords) || containsAny(bullets, technicalActivityWords)

	var gaps []string
	for _, skill := range missingRequired {
		token := skills.Canonicalize(skill)
		plausible := softSkills[token] || (technicalEntry && skills.IsKnown(skill))
		if !plausible {
			continue
		}
		gaps = append(gaps, skill)
		if len(gaps) == maxGapsPerEntry {
			break
		}
	}
	return gaps
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if skills.ContainsToken(text, word) {
			return true
		}
	}
	return false
}

// entryExplanation renders the relevance tier plus up to four matched names.
func entryExplanation(relevance float64, matched []string) string {
	var tier string
	switch {
	case relevance >= highlyRelevantThreshold:
		tier = "Highly relevant to this role."
	case relevance >= moderatelyRelevantThreshold:
		tier = "Moderately relevant to this role."
	default:
		tier = "Less directly relevant to this role."
	}

	if len(matched) == 0 {
		return tier
	}

	shown := matched
	extra := 0
	if len(shown) > maxMentionedSkills {
		extra = len(shown) - maxMentionedSkills
		shown = shown[:maxMentionedSkills]
	}
	mention := fmt.Sprintf(" Mentions: %s", strings.Join(shown, ", "))
	if extra > 0 {
		mention += fmt.Sprintf(" (+%d more)", extra)
	}
	return tier + mention + "."
}
