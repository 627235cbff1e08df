package explaining

import "github.com/jonathan/resume-tailor/internal/types"

// Fallback returns the minimal explanation used when full explanation
// generation fails. It reports only what the match result alone supports.
func Fallback(match *types.MatchResult) *types.Explanation {
	points := []string{"Detailed explanations were unavailable for this run"}
	if match != nil {
		points = append(points, keyPoints(match, nil, nil)...)
	}

	return &types.Explanation{
		GlobalStrategy: "The resume was tailored toward this posting's skills and responsibilities. A detailed explanation could not be generated for this run.",
		KeyPoints:      points,
	}
}
