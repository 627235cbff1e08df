package pipeline

import "github.com/jonathan/resume-tailor/internal/types"

// ApplyRewrites returns a deep copy of the entries with each bullet replaced
// by the suggested text of a matching, non-dismissed suggestion for the given
// section. The input entries are never modified; callers apply or revert
// against their own copy.
func ApplyRewrites(entries []types.Entry, suggestions []types.Suggestion, section string) []types.Entry {
	applied := types.CloneEntries(entries)

	replacements := make(map[string]string)
	for _, s := range suggestions {
		if s.Section != section || s.Status == types.StatusDismissed {
			continue
		}
		if _, exists := replacements[s.Original]; !exists {
			replacements[s.Original] = s.Suggested
		}
	}
	if len(replacements) == 0 {
		return applied
	}

	for i := range applied {
		for j, bullet := range applied[i].DescriptionPoints {
			if suggested, ok := replacements[bullet]; ok {
				applied[i].DescriptionPoints[j] = suggested
			}
		}
	}
	return applied
}
