// Package llm - polish.go provides optional generative polish for suggested
// bullet rewrites. Polish runs outside the deterministic tailoring core: it
// only rephrases text the rule-based rewriter already produced, and callers
// must treat any failure as non-fatal.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxPolishLengthRatio rejects polished text that grew suspiciously long,
// which usually means the model added explanation instead of a bullet.
const maxPolishLengthRatio = 2

// PolishSuggestions asks the model to smooth the phrasing of each suggested
// rewrite without changing its claims. The original and suggested text, the
// section, and the review status are all preserved; only the suggested
// phrasing may improve. A per-suggestion failure keeps that suggestion as-is.
func PolishSuggestions(ctx context.Context, apiKey string, suggestions []types.Suggestion) ([]types.Suggestion, error) {
	if len(suggestions) == 0 {
		return suggestions, nil
	}

	client, err := NewClient(ctx, DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create polish client: %w", err)
	}
	defer func() { _ = client.Close() }()

	polished := make([]types.Suggestion, len(suggestions))
	copy(polished, suggestions)

	for i := range polished {
		text, err := client.GenerateContent(ctx, buildPolishPrompt(polished[i]), TierLite)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if !acceptablePolish(polished[i].Suggested, text) {
			continue
		}
		if text != polished[i].Suggested {
			polished[i].Suggested = text
			polished[i].Reason += "; phrasing polished"
		}
	}
	return polished, nil
}

func buildPolishPrompt(s types.Suggestion) string {
	template := prompts.MustGet("polish.json", "polish-bullet")
	return prompts.Format(template, map[string]string{"Bullet": s.Suggested})
}

// acceptablePolish rejects responses that are empty, multi-line, or far
// longer than the input.
func acceptablePolish(original, polished string) bool {
	if polished == "" || strings.Contains(polished, "\n") {
		return false
	}
	return len(polished) <= maxPolishLengthRatio*len(original)
}
