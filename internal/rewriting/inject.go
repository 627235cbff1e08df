package rewriting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
)

// injectionPattern pairs a generic phrase with the concrete skills that
// commonly hide behind it. When a bullet uses the phrase and the candidate
// demonstrably has one of the skills, the skill name is inserted before the
// phrase to make the bullet specific.
type injectionPattern struct {
	phrase  string
	options []string
	pattern *regexp.Regexp
}

func newInjectionPattern(phrase string, options ...string) injectionPattern {
	return injectionPattern{
		phrase:  phrase,
		options: options,
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
	}
}

// injectionPatterns is scanned in order; at most one injection is made per
// bullet.
var injectionPatterns = []injectionPattern{
	newInjectionPattern("web application", "react", "vue", "angular", "next.js"),
	newInjectionPattern("frontend", "react", "vue", "angular"),
	newInjectionPattern("backend", "node", "python", "java", "go"),
	newInjectionPattern("api", "rest", "graphql"),
	newInjectionPattern("database", "postgresql", "mysql", "mongodb", "redis"),
	newInjectionPattern("cloud", "aws", "gcp", "azure"),
	newInjectionPattern("mobile app", "react native", "flutter", "swift", "kotlin"),
	newInjectionPattern("machine learning", "tensorflow", "pytorch", "scikit-learn"),
}

// injectSkill inserts the first injectable skill it can in front of a generic
// phrase. The injectable set maps canonical tokens to display names and holds
// only skills both matched by the posting and declared by the candidate, so
// an injection never claims anything new. Returns the possibly modified text,
// the injected display name, and a change description.
func injectSkill(text string, injectable map[string]string) (string, string, string) {
	lower := strings.ToLower(text)

	for _, pat := range injectionPatterns {
		loc := pat.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		for _, option := range pat.options {
			display, ok := injectable[skills.Canonicalize(option)]
			if !ok {
				continue
			}
			// Skip skills the bullet already names.
			if strings.Contains(lower, option) || strings.Contains(lower, strings.ToLower(display)) {
				continue
			}
			injected := text[:loc[0]] + display + " " + text[loc[0]:]
			change := fmt.Sprintf("specified %s for %q", display, pat.phrase)
			return injected, display, change
		}
	}
	return text, "", ""
}
