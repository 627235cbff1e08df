// Package matching compares candidate skills against job postings and
// annotates profile entries with relevance information.
package matching

import (
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// MatchSkills canonicalizes both skill lists and computes their overlap.
// Matched and missing names are reported as written in the posting; extra
// skills as written in the resume.
func MatchSkills(candidateSkills []string, posting *types.JobPosting) *types.MatchResult {
	candidateSet := skills.CanonicalSet(candidateSkills)

	matchedRequired, missingRequired := partitionByPossession(posting.RequiredSkills, candidateSet)
	matchedPreferred, missingPreferred := partitionByPossession(posting.PreferredSkills, candidateSet)

	postingSet := skills.CanonicalSet(posting.AllSkills())
	var extras []string
	seenExtras := make(map[string]bool)
	for _, skill := range candidateSkills {
		token := skills.Canonicalize(skill)
		if token == "" || postingSet[token] || seenExtras[token] {
			continue
		}
		seenExtras[token] = true
		extras = append(extras, skill)
	}

	score := 1.0
	if requiredCount := len(skills.CanonicalSet(posting.RequiredSkills)); requiredCount > 0 {
		score = float64(len(matchedRequired)) / float64(requiredCount)
	}

	return &types.MatchResult{
		MatchedRequired:  matchedRequired,
		MatchedPreferred: matchedPreferred,
		MissingRequired:  missingRequired,
		MissingPreferred: missingPreferred,
		ExtraSkills:      extras,
		MatchScore:       clamp01(score),
	}
}

// partitionByPossession splits a posting's skill list into matched and
// missing by canonical membership in the candidate set. Each canonical token
// is assigned to exactly one side, so the two lists partition the set.
func partitionByPossession(postingSkills []string, candidateSet map[string]bool) (matched, missing []string) {
	seen := make(map[string]bool)
	for _, skill := range postingSkills {
		token := skills.Canonicalize(skill)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		if candidateSet[token] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
