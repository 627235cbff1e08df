// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	if profile.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Contact.Email))
	}
	sb.WriteString(fmt.Sprintf("Entries:  %d experience, %d education, %d projects\n",
		len(profile.Experience), len(profile.Education), len(profile.Projects)))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobPosting outputs a human-readable summary of the analyzed posting.
func (p *Printer) PrintJobPosting(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", posting.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", posting.Title))

	if len(posting.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(posting.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", posting.RequiredSkills[i]))
		}
		if len(posting.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(posting.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred Skills:\n")
		count := min(len(posting.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", posting.PreferredSkills[i]))
		}
		if len(posting.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.PreferredSkills)-3))
		}
	}

	p.printBox("ANALYZED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the skill comparison with the match tier.
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.0f%% (%s match)\n", match.MatchScore*100, match.Tier()))

	writeSkillLine := func(label string, skills []string) {
		if len(skills) == 0 {
			return
		}
		joined := strings.Join(skills, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", label, joined))
	}

	writeSkillLine("Matched: ", match.MatchedRequired)
	writeSkillLine("Missing: ", match.MissingRequired)
	writeSkillLine("Preferred:", match.MatchedPreferred)
	writeSkillLine("Extras:  ", match.ExtraSkills)

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the pending rewrite suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO REWRITE SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d suggestions:\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		suggested := s.Suggested
		if len(suggested) > 50 {
			suggested = suggested[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", suggested))

		reason := s.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  [%s]\n", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("REWRITE SUGGESTIONS", sb.String())
}

// PrintExplanation outputs the explanation bundle's key points.
func (p *Printer) PrintExplanation(explanation *types.Explanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder
	strategy := explanation.GlobalStrategy
	if len(strategy) > 50 {
		strategy = strategy[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", strategy))

	if len(explanation.KeyPoints) > 0 {
		sb.WriteString("\nKey Points:\n")
		for _, point := range explanation.KeyPoints {
			if len(point) > 50 {
				point = point[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", point))
		}
	}

	p.printBox("EXPLANATION", strings.TrimSuffix(sb.String(), "\n"))
}
