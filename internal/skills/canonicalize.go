// Package skills provides skill-name canonicalization and the known-skill
// lexicon used for extraction and matching.
package skills

import (
	"regexp"
	"strings"
)

// skillAliases maps lexical variants of a skill name to one canonical token.
// Keys and values are lowercase. Applied twice around suffix stripping
// because stripping can expose another alias.
var skillAliases = map[string]string{
	// Languages
	"golang":  "go",
	"go lang": "go",
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",

	// Frameworks and runtimes
	"reactjs":    "react",
	"react.js":   "react",
	"react js":   "react",
	"nodejs":     "node",
	"node.js":    "node",
	"node js":    "node",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"vue js":     "vue",
	"angularjs":  "angular",
	"angular.js": "angular",
	"nextjs":     "next.js",
	"next js":    "next.js",
	"expressjs":  "express",
	"express.js": "express",

	// Data stores
	"postgres":    "postgresql",
	"postgre sql": "postgresql",
	"mongo":       "mongodb",

	// Cloud and infrastructure
	"k8s":                   "kubernetes",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"microsoft azure":       "azure",
	"ci cd":                 "ci/cd",
	"cicd":                  "ci/cd",
	"ci/cd pipelines":       "ci/cd",

	// APIs
	"rest api":     "rest",
	"rest apis":    "rest",
	"restful":      "rest",
	"restful api":  "rest",
	"restful apis": "rest",

	// Machine learning
	"ml":           "machine learning",
	"scikit learn": "scikit-learn",
	"sklearn":      "scikit-learn",
	"tf":           "tensorflow",
}

// strippableSuffixes are file-extension style suffixes that survive alias
// resolution, e.g. "svelte.js". First match wins.
var strippableSuffixes = []string{".js", ".py", ".ts", ".go", ".rs"}

var trailingVersion = regexp.MustCompile(`\s+v?\d+(\.\d+)*$`)

const edgePunctuation = ".,;:-•"

// Canonicalize maps lexical variants of a skill name to one canonical token:
// lowercase, trimmed, edge punctuation and trailing version numbers removed,
// alias table applied both before and after suffix stripping.
func Canonicalize(skill string) string {
	token := strings.ToLower(strings.TrimSpace(skill))
	token = strings.Trim(token, edgePunctuation+" ")
	token = trailingVersion.ReplaceAllString(token, "")

	if alias, ok := skillAliases[token]; ok {
		token = alias
	}

	for _, suffix := range strippableSuffixes {
		if len(token) > len(suffix) && strings.HasSuffix(token, suffix) {
			token = strings.TrimSuffix(token, suffix)
			break
		}
	}

	if alias, ok := skillAliases[token]; ok {
		token = alias
	}

	return token
}

// CanonicalSet canonicalizes every skill in the list into a set.
func CanonicalSet(skillList []string) map[string]bool {
	set := make(map[string]bool, len(skillList))
	for _, skill := range skillList {
		if token := Canonicalize(skill); token != "" {
			set[token] = true
		}
	}
	return set
}

// DisplayNames maps each canonical token to the first skill in the list that
// produced it, so reported names match how they were actually written.
func DisplayNames(skillList []string) map[string]string {
	names := make(map[string]string, len(skillList))
	for _, skill := range skillList {
		token := Canonicalize(skill)
		if token == "" {
			continue
		}
		if _, exists := names[token]; !exists {
			names[token] = skill
		}
	}
	return names
}

// ContainsToken reports whether token appears in text on word boundaries,
// case-insensitively. A boundary is the text edge or any non-alphanumeric
// character, so "go" matches in "go services" but not in "going".
func ContainsToken(text, token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}
	text = strings.ToLower(text)

	for start := 0; ; {
		idx := strings.Index(text[start:], token)
		if idx < 0 {
			return false
		}
		idx += start

		boundedLeft := idx == 0 || !isWordChar(text[idx-1])
		endIdx := idx + len(token)
		boundedRight := endIdx == len(text) || !isWordChar(text[endIdx])
		if boundedLeft && boundedRight {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
