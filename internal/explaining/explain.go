// Package explaining renders template-driven explanations of a tailoring
// run: the overall strategy, per-section change summaries, skill reorder and
// gap notes, and a short list of key points. Everything is derived from the
// match result and the suggestions; nothing here consults the raw text.
package explaining

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// topSkillCount is how many skills a strategy or key point names.
	topSkillCount = 3
	// maxReorderNotes caps the skill-reorder note list.
	maxReorderNotes = 5
	// maxRequiredGapNotes and maxPreferredGapNotes cap the gap note list.
	maxRequiredGapNotes  = 5
	maxPreferredGapNotes = 3
	// preferredMoveThreshold is how many positions a matched preferred skill
	// must climb before the move is worth a note.
	preferredMoveThreshold = 3
	// maxSectionReasons and sectionReasonSample bound the distinct reasons
	// quoted per section.
	maxSectionReasons   = 2
	sectionReasonSample = 3
)

// BuildExplanation assembles the full explanation bundle for a completed run.
// reorderedSkills is the skill list after reordering; the profile still holds
// the original order.
func BuildExplanation(profile *types.Profile, posting *types.JobPosting, match *types.MatchResult, suggestions []types.Suggestion, reorderedSkills []string) *types.Explanation {
	reorderNotes := reorderNotes(profile.Skills, reorderedSkills, match)

	return &types.Explanation{
		GlobalStrategy:      globalStrategy(posting, match),
		SectionExplanations: sectionExplanations(suggestions),
		SkillReorderNotes:   reorderNotes,
		GapNotes:            gapNotes(match),
		KeyPoints:           keyPoints(match, suggestions, reorderNotes),
	}
}

// globalStrategy picks the strategy template for the match tier and fills it.
func globalStrategy(posting *types.JobPosting, match *types.MatchResult) string {
	role := posting.Title
	if role == "" {
		role = "advertised"
	}
	company := posting.Company
	if company == "" {
		company = "the company"
	}

	if match.NoRequiredSkills() {
		return fmt.Sprintf(
			"The posting for the %s role at %s lists no explicit skill requirements, so the resume was tailored toward its responsibilities and overall emphasis.",
			role, company)
	}

	percent := matchPercent(match)
	matched := joinNatural(topN(match.MatchedRequired, topSkillCount))
	missing := joinNatural(topN(match.MissingRequired, topSkillCount))

	switch match.Tier() {
	case "strong":
		return fmt.Sprintf(
			"Your profile is a strong fit for the %s role at %s: %d%% of the required skills are covered, including %s.",
			role, company, percent, matched)
	case "moderate":
		return fmt.Sprintf(
			"Your profile covers %d%% of the required skills for the %s role at %s. Lead with %s, and be ready to address %s.",
			percent, role, company, matched, missing)
	default:
		return fmt.Sprintf(
			"Your profile covers %d%% of the required skills for the %s role at %s. The largest gaps are %s, so the tailoring emphasizes transferable work.",
			percent, role, company, missing)
	}
}

// sectionExplanations groups suggestions by section and summarizes each group.
// Sections appear in the order their first suggestion appears.
func sectionExplanations(suggestions []types.Suggestion) []types.SectionExplanation {
	var order []string
	grouped := make(map[string][]types.Suggestion)
	for _, s := range suggestions {
		if _, seen := grouped[s.Section]; !seen {
			order = append(order, s.Section)
		}
		grouped[s.Section] = append(grouped[s.Section], s)
	}

	explanations := make([]types.SectionExplanation, 0, len(order))
	for _, section := range order {
		group := grouped[section]
		reasons := distinctReasons(group)
		explanations = append(explanations, types.SectionExplanation{
			Section:     section,
			ChangeCount: len(group),
			Reasons:     reasons,
			Text:        sectionText(section, len(group), reasons),
		})
	}
	return explanations
}

// distinctReasons samples the first few suggestions for distinct reasons.
func distinctReasons(group []types.Suggestion) []string {
	var reasons []string
	seen := make(map[string]bool)
	for i, s := range group {
		if i == sectionReasonSample || len(reasons) == maxSectionReasons {
			break
		}
		if s.Reason == "" || seen[s.Reason] {
			continue
		}
		seen[s.Reason] = true
		reasons = append(reasons, s.Reason)
	}
	return reasons
}

func sectionText(section string, count int, reasons []string) string {
	text := fmt.Sprintf("%d suggested %s in %s", count, plural(count, "improvement"), sectionDisplayName(section))
	if len(reasons) > 0 {
		text += ": " + strings.Join(reasons, "; ")
	}
	return text + "."
}

// reorderNotes describes matched skills that moved toward the front of the
// skill list. Required skills get a note for any upward move; preferred
// skills only for a substantial one.
func reorderNotes(original, reordered []string, match *types.MatchResult) []string {
	positions := make(map[string]int, len(original))
	for i, skill := range original {
		token := skills.Canonicalize(skill)
		if _, seen := positions[token]; !seen {
			positions[token] = i
		}
	}
	requiredSet := skills.CanonicalSet(match.MatchedRequired)
	preferredSet := skills.CanonicalSet(match.MatchedPreferred)

	var notes []string
	for newPos, skill := range reordered {
		if len(notes) == maxReorderNotes {
			break
		}
		token := skills.Canonicalize(skill)
		oldPos, known := positions[token]
		if !known || newPos >= oldPos {
			continue
		}
		switch {
		case requiredSet[token]:
			notes = append(notes, fmt.Sprintf("Moved %s up: it is a required skill for this posting.", skill))
		case preferredSet[token] && oldPos-newPos > preferredMoveThreshold:
			notes = append(notes, fmt.Sprintf("Moved %s up: it is a preferred skill for this posting.", skill))
		}
	}
	return notes
}

// gapNotes lists the most important missing skills with a suggested action.
func gapNotes(match *types.MatchResult) []string {
	var notes []string
	for _, skill := range topN(match.MissingRequired, maxRequiredGapNotes) {
		notes = append(notes, fmt.Sprintf("Required skill %s is not on your resume. Add it only if you have real experience with it.", skill))
	}
	for _, skill := range topN(match.MissingPreferred, maxPreferredGapNotes) {
		notes = append(notes, fmt.Sprintf("Preferred skill %s is not on your resume. Mention it if you have any exposure.", skill))
	}
	return notes
}

// keyPoints condenses the run into a short reviewable list.
func keyPoints(match *types.MatchResult, suggestions []types.Suggestion, reorderNotes []string) []string {
	var points []string

	if match.NoRequiredSkills() {
		points = append(points, "The posting lists no explicit required skills")
	} else {
		points = append(points, fmt.Sprintf("%d%% match with the posting's required skills", matchPercent(match)))
	}
	if matched := topN(match.MatchedRequired, topSkillCount); len(matched) > 0 {
		points = append(points, "Strong match on: "+strings.Join(matched, ", "))
	}
	if missing := topN(match.MissingRequired, topSkillCount); len(missing) > 0 {
		points = append(points, "Gaps to consider: "+strings.Join(missing, ", "))
	}
	if n := len(suggestions); n > 0 {
		points = append(points, fmt.Sprintf("%d suggested %s to review", n, plural(n, "edit")))
	} else {
		points = append(points, "No major changes needed")
	}
	if len(reorderNotes) > 0 {
		points = append(points, "Skills reordered to lead with the posting's priorities")
	}
	return points
}

func matchPercent(match *types.MatchResult) int {
	return int(math.Round(match.MatchScore * 100))
}

func topN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// joinNatural renders a list as prose: "X", "X and Y", "X, Y, and Z".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}

// sectionDisplayName maps a section identifier to prose.
func sectionDisplayName(section string) string {
	switch section {
	case "work_experience":
		return "Work Experience"
	case "projects":
		return "Projects"
	}
	words := strings.Split(section, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
