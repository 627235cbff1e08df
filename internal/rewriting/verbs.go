package rewriting

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// verbUpgrade replaces one weak verb phrase with a stronger equivalent.
// Matching is case-insensitive on word boundaries; the replacement inherits
// the capitalization of the text it replaces.
type verbUpgrade struct {
	weak    string
	strong  string
	pattern *regexp.Regexp
}

func newVerbUpgrade(weak, strong string) verbUpgrade {
	return verbUpgrade{
		weak:    weak,
		strong:  strong,
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(weak) + `\b`),
	}
}

// verbUpgrades is applied in order; every occurrence of every phrase is
// replaced. Longer phrases sharing a prefix come before their prefix.
var verbUpgrades = []verbUpgrade{
	newVerbUpgrade("worked on", "contributed to"),
	newVerbUpgrade("helped with", "supported"),
	newVerbUpgrade("was responsible for", "managed"),
	newVerbUpgrade("was in charge of", "led"),
	newVerbUpgrade("did", "executed"),
	newVerbUpgrade("made", "created"),
	newVerbUpgrade("got", "achieved"),
	newVerbUpgrade("used", "utilized"),
	newVerbUpgrade("tried to", "worked to"),
	newVerbUpgrade("assisted with", "assisted in"),
}

// upgradeVerbs applies every verb upgrade to the text and returns the result
// plus a change description per upgrade that fired.
func upgradeVerbs(text string) (string, []string) {
	var changes []string
	for _, upgrade := range verbUpgrades {
		if !upgrade.pattern.MatchString(text) {
			continue
		}
		text = upgrade.pattern.ReplaceAllStringFunc(text, func(match string) string {
			return matchCapitalization(upgrade.strong, match)
		})
		changes = append(changes, fmt.Sprintf("replaced %q with %q", upgrade.weak, upgrade.strong))
	}
	return text, changes
}

// matchCapitalization capitalizes the replacement when the original phrase
// started with an uppercase letter.
func matchCapitalization(replacement, original string) string {
	for _, r := range original {
		if unicode.IsUpper(r) {
			return strings.ToUpper(replacement[:1]) + replacement[1:]
		}
		break
	}
	return replacement
}
