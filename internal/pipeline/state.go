package pipeline

import "github.com/jonathan/resume-tailor/internal/types"

// Stage identifies where a pipeline run currently is. Transitions are
// strictly forward; StageFailed is reachable from any stage.
type Stage string

const (
	StageNotStarted    Stage = "not_started"
	StageParsingResume Stage = "parsing_resume"
	StageParsingJob    Stage = "parsing_job"
	StageMatching      Stage = "matching"
	StageRewriting     Stage = "rewriting"
	StageExplaining    Stage = "explaining"
	StageComplete      Stage = "complete"
	StageFailed        Stage = "failed"
)

// State holds the raw inputs and every stage output of one tailoring run.
// It is owned by exactly one Orchestrator and never shared between requests.
type State struct {
	ResumeText string
	JobText    string

	Profile          *types.Profile
	JobPosting       *types.JobPosting
	MatchResult      *types.MatchResult
	AnnotatedProfile *types.Profile

	Suggestions        []types.Suggestion
	ReorderedSkills    []string
	TailoredExperience []types.Entry
	TailoredProjects   []types.Entry
	Explanation        *types.Explanation

	Stage    Stage
	Errors   []error
	Warnings []string
}

func newState() *State {
	return &State{Stage: StageNotStarted}
}
