// Package rewriting produces conservative, reviewable edits to resume
// bullets: weak verb phrases are strengthened, generic phrases are made
// specific with skills the candidate already holds, and skill lists are
// reordered toward the posting. No edit invents experience.
package rewriting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Confidence tiers for suggestions. A verb-only rewrite restates what the
// bullet already says; a skill injection adds a claim the candidate must
// confirm, so it carries lower confidence alongside its verification
// question. Review surfaces treat confidence below 0.8 as "check this".
const (
	rephraseConfidence  = 1.0
	injectionConfidence = 0.7
)

// Sections a suggestion can target.
const (
	SectionWorkExperience = "work_experience"
	SectionProjects       = "projects"
)

var (
	spaceRunPattern         = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunctPattern = regexp.MustCompile(`\s+([.,;:!?])`)
)

// BulletRewrite is the outcome of rewriting one bullet.
type BulletRewrite struct {
	Text                 string
	Changes              []string
	VerificationQuestion string
}

// RewriteBullet applies the verb upgrades and at most one skill injection to
// a single bullet. The injectable map carries canonical token to display name
// for skills both matched by the posting and declared by the candidate. The
// returned text equals the cleaned original when no rule fired.
func RewriteBullet(bullet string, injectable map[string]string) BulletRewrite {
	text, changes := upgradeVerbs(bullet)

	text, injected, change := injectSkill(text, injectable)
	var question string
	if injected != "" {
		changes = append(changes, change)
		question = fmt.Sprintf("Did this work involve %s?", injected)
	}

	return BulletRewrite{
		Text:                 cleanWhitespace(text),
		Changes:              changes,
		VerificationQuestion: question,
	}
}

// RewriteProfile rewrites every experience and project bullet and returns one
// pending suggestion per bullet that actually changed. The profile itself is
// never modified; applying accepted suggestions is a separate step.
func RewriteProfile(profile *types.Profile, match *types.MatchResult) []types.Suggestion {
	injectable := InjectableSkills(profile, match)

	var suggestions []types.Suggestion
	suggestions = append(suggestions, rewriteSection(profile.Experience, SectionWorkExperience, injectable)...)
	suggestions = append(suggestions, rewriteSection(profile.Projects, SectionProjects, injectable)...)
	return suggestions
}

func rewriteSection(entries []types.Entry, section string, injectable map[string]string) []types.Suggestion {
	var suggestions []types.Suggestion
	for _, entry := range entries {
		for _, bullet := range entry.DescriptionPoints {
			rewrite := RewriteBullet(bullet, injectable)
			if rewrite.Text == bullet {
				continue
			}
			confidence := rephraseConfidence
			if rewrite.VerificationQuestion != "" {
				confidence = injectionConfidence
			}
			suggestions = append(suggestions, types.Suggestion{
				Original:             bullet,
				Suggested:            rewrite.Text,
				Reason:               strings.Join(rewrite.Changes, "; "),
				VerificationQuestion: rewrite.VerificationQuestion,
				Section:              section,
				Confidence:           confidence,
				Status:               types.StatusPending,
			})
		}
	}
	return suggestions
}

// InjectableSkills returns the skills eligible for injection: matched posting
// skills that also appear in the candidate's declared skill list, keyed by
// canonical token with the lexicon's display casing.
func InjectableSkills(profile *types.Profile, match *types.MatchResult) map[string]string {
	declared := skills.CanonicalSet(profile.Skills)

	injectable := make(map[string]string)
	for _, skill := range append(append([]string(nil), match.MatchedRequired...), match.MatchedPreferred...) {
		token := skills.Canonicalize(skill)
		if token == "" || !declared[token] {
			continue
		}
		if _, exists := injectable[token]; !exists {
			injectable[token] = skills.DisplayName(skill)
		}
	}
	return injectable
}

// ReorderSkills returns the candidate's skills with matched required skills
// first, then matched preferred, then everything else. Within each bucket the
// resume's relative order and casing are preserved.
func ReorderSkills(candidateSkills []string, match *types.MatchResult) []string {
	requiredSet := skills.CanonicalSet(match.MatchedRequired)
	preferredSet := skills.CanonicalSet(match.MatchedPreferred)

	var required, preferred, rest []string
	for _, skill := range candidateSkills {
		token := skills.Canonicalize(skill)
		switch {
		case requiredSet[token]:
			required = append(required, skill)
		case preferredSet[token]:
			preferred = append(preferred, skill)
		default:
			rest = append(rest, skill)
		}
	}

	reordered := make([]string, 0, len(candidateSkills))
	reordered = append(reordered, required...)
	reordered = append(reordered, preferred...)
	reordered = append(reordered, rest...)
	return reordered
}

// cleanWhitespace collapses runs of spaces, removes spaces left dangling
// before punctuation, and trims the ends.
func cleanWhitespace(text string) string {
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = spaceBeforePunctPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
