// Package pipeline sequences the five tailoring stages over an explicit,
// per-request State: parse the resume, analyze the posting, match skills,
// rewrite conservatively, and explain. Parsing and matching failures are
// fatal; rewriting and explaining degrade to fallbacks with a warning.
package pipeline

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/explaining"
	"github.com/jonathan/resume-tailor/internal/matching"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rewriting"
	"github.com/jonathan/resume-tailor/internal/types"
)

// minInputLength is the fewest characters either raw input may have. Shorter
// text cannot yield a usable structure, so it is rejected up front.
const minInputLength = 30

// runStages is the forward order Run drives the stages in.
var runStages = []Stage{
	StageParsingResume,
	StageParsingJob,
	StageMatching,
	StageRewriting,
	StageExplaining,
}

// Orchestrator owns one State and drives it through the stages. Construct a
// fresh Orchestrator per tailoring request; instances are not safe for
// concurrent use. Collaborators are constructed lazily and cached on the
// instance so tests can substitute them before first use.
type Orchestrator struct {
	state *State

	parseResume func(string) (*types.Profile, error)
	analyzeJob  func(string) (*types.JobPosting, error)
	match       func([]string, *types.JobPosting) *types.MatchResult
	annotate    func(*types.Profile, *types.JobPosting, *types.MatchResult) *types.Profile
	rewrite     func(*types.Profile, *types.MatchResult) []types.Suggestion
	reorder     func([]string, *types.MatchResult) []string
	explain     func(*types.Profile, *types.JobPosting, *types.MatchResult, []types.Suggestion, []string) *types.Explanation
}

// New returns an orchestrator with a fresh, empty state.
func New() *Orchestrator {
	return &Orchestrator{state: newState()}
}

// State exposes the run's accumulated state for caller inspection.
func (o *Orchestrator) State() *State {
	return o.state
}

// Reset discards all accumulated state, returning the orchestrator to
// NotStarted. Cached collaborators are kept.
func (o *Orchestrator) Reset() {
	o.state = newState()
}

// Run drives all five stages in order and assembles the final result.
// Input validation happens before any stage executes; a validation failure
// leaves the state untouched.
func (o *Orchestrator) Run(resumeText, jobText string) (*types.TailoringResult, error) {
	if err := validateInput("resume", resumeText); err != nil {
		return nil, err
	}
	if err := validateInput("job posting", jobText); err != nil {
		return nil, err
	}

	o.Reset()
	o.state.ResumeText = resumeText
	o.state.JobText = jobText

	for _, stage := range runStages {
		if err := o.RunStage(stage); err != nil {
			return nil, err
		}
	}

	o.state.Stage = StageComplete
	return o.result(), nil
}

// RunStage executes a single stage against the current state. The stage's
// predecessor output must already be present. Parsing and matching failures
// mark the state Failed and propagate; rewriting and explaining failures
// substitute a fallback, record a warning, and return nil.
func (o *Orchestrator) RunStage(stage Stage) error {
	switch stage {
	case StageParsingResume:
		return o.runParsingResume()
	case StageParsingJob:
		return o.runParsingJob()
	case StageMatching:
		return o.runMatching()
	case StageRewriting:
		return o.runRewriting()
	case StageExplaining:
		return o.runExplaining()
	default:
		return fmt.Errorf("unknown pipeline stage %q", stage)
	}
}

func (o *Orchestrator) runParsingResume() error {
	if o.state.ResumeText == "" {
		return o.fail(StageParsingResume, &PreconditionError{Stage: StageParsingResume, Missing: "resume text"})
	}
	o.state.Stage = StageParsingResume

	profile, err := o.resumeParser()(o.state.ResumeText)
	if err != nil {
		return o.fail(StageParsingResume, err)
	}
	o.state.Profile = profile
	return nil
}

func (o *Orchestrator) runParsingJob() error {
	if o.state.JobText == "" {
		return o.fail(StageParsingJob, &PreconditionError{Stage: StageParsingJob, Missing: "job posting text"})
	}
	o.state.Stage = StageParsingJob

	posting, err := o.jobAnalyzer()(o.state.JobText)
	if err != nil {
		return o.fail(StageParsingJob, err)
	}
	o.state.JobPosting = posting
	return nil
}

func (o *Orchestrator) runMatching() error {
	if o.state.Profile == nil {
		return o.fail(StageMatching, &PreconditionError{Stage: StageMatching, Missing: "parsed profile"})
	}
	if o.state.JobPosting == nil {
		return o.fail(StageMatching, &PreconditionError{Stage: StageMatching, Missing: "analyzed job posting"})
	}
	o.state.Stage = StageMatching

	err := o.guard(func() {
		o.state.MatchResult = o.matcher()(o.state.Profile.Skills, o.state.JobPosting)
		o.state.AnnotatedProfile = o.annotator()(o.state.Profile, o.state.JobPosting, o.state.MatchResult)
	})
	if err != nil {
		return o.fail(StageMatching, err)
	}
	return nil
}

func (o *Orchestrator) runRewriting() error {
	if o.state.MatchResult == nil {
		return o.fail(StageRewriting, &PreconditionError{Stage: StageRewriting, Missing: "match result"})
	}
	if o.state.AnnotatedProfile == nil {
		return o.fail(StageRewriting, &PreconditionError{Stage: StageRewriting, Missing: "annotated profile"})
	}
	o.state.Stage = StageRewriting

	err := o.guard(func() {
		// The rewriter consumes the annotated copy from the matching stage;
		// the parsed profile stays pristine.
		o.state.Suggestions = o.rewriter()(o.state.AnnotatedProfile, o.state.MatchResult)
		o.state.ReorderedSkills = o.reorderer()(o.state.Profile.Skills, o.state.MatchResult)
		o.state.TailoredExperience = ApplyRewrites(o.state.Profile.Experience, o.state.Suggestions, rewriting.SectionWorkExperience)
		o.state.TailoredProjects = ApplyRewrites(o.state.Profile.Projects, o.state.Suggestions, rewriting.SectionProjects)
	})
	if err != nil {
		o.degrade(StageRewriting, err)
		// Fallback: no bullet rewrites, skills-only reordering.
		o.state.Suggestions = nil
		o.state.ReorderedSkills = rewriting.ReorderSkills(o.state.Profile.Skills, o.state.MatchResult)
		o.state.TailoredExperience = types.CloneEntries(o.state.Profile.Experience)
		o.state.TailoredProjects = types.CloneEntries(o.state.Profile.Projects)
	}
	return nil
}

func (o *Orchestrator) runExplaining() error {
	if o.state.MatchResult == nil {
		return o.fail(StageExplaining, &PreconditionError{Stage: StageExplaining, Missing: "match result"})
	}
	o.state.Stage = StageExplaining

	err := o.guard(func() {
		o.state.Explanation = o.explainer()(o.state.Profile, o.state.JobPosting, o.state.MatchResult, o.state.Suggestions, o.state.ReorderedSkills)
	})
	if err != nil {
		o.degrade(StageExplaining, err)
		o.state.Explanation = explaining.Fallback(o.state.MatchResult)
	}
	return nil
}

// guard runs a stage body, converting a panic into an error so a malformed
// input shape cannot take the whole request down.
func (o *Orchestrator) guard(body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	body()
	return nil
}

// fail records a fatal stage error and moves the state to Failed.
func (o *Orchestrator) fail(stage Stage, cause error) error {
	err := cause
	if _, ok := cause.(*PreconditionError); !ok {
		err = &StageError{Stage: stage, Cause: cause}
	}
	o.state.Errors = append(o.state.Errors, err)
	o.state.Stage = StageFailed
	return err
}

// degrade records a non-fatal stage error as a warning; the caller installs
// the stage's fallback output.
func (o *Orchestrator) degrade(stage Stage, cause error) {
	err := &StageError{Stage: stage, Cause: cause}
	o.state.Errors = append(o.state.Errors, err)
	o.state.Warnings = append(o.state.Warnings, err.Error())
}

func (o *Orchestrator) result() *types.TailoringResult {
	return &types.TailoringResult{
		Profile:            o.state.Profile,
		JobPosting:         o.state.JobPosting,
		MatchResult:        o.state.MatchResult,
		Suggestions:        o.state.Suggestions,
		ReorderedSkills:    o.state.ReorderedSkills,
		TailoredExperience: o.state.TailoredExperience,
		TailoredProjects:   o.state.TailoredProjects,
		Explanation:        o.state.Explanation,
		Complete:           len(o.state.Warnings) == 0,
		Warnings:           o.state.Warnings,
	}
}

func validateInput(field, text string) error {
	length := len([]rune(text))
	switch {
	case text == "":
		return &InputError{Field: field, Message: "text is empty"}
	case length < minInputLength:
		return &InputError{Field: field, Message: fmt.Sprintf("text is too short (%d characters, minimum %d)", length, minInputLength)}
	}
	return nil
}

// Lazily constructed, instance-cached collaborators.

func (o *Orchestrator) resumeParser() func(string) (*types.Profile, error) {
	if o.parseResume == nil {
		o.parseResume = parsing.ParseResume
	}
	return o.parseResume
}

func (o *Orchestrator) jobAnalyzer() func(string) (*types.JobPosting, error) {
	if o.analyzeJob == nil {
		o.analyzeJob = parsing.AnalyzeJobPosting
	}
	return o.analyzeJob
}

func (o *Orchestrator) matcher() func([]string, *types.JobPosting) *types.MatchResult {
	if o.match == nil {
		o.match = matching.MatchSkills
	}
	return o.match
}

func (o *Orchestrator) annotator() func(*types.Profile, *types.JobPosting, *types.MatchResult) *types.Profile {
	if o.annotate == nil {
		o.annotate = matching.AnnotateProfile
	}
	return o.annotate
}

func (o *Orchestrator) rewriter() func(*types.Profile, *types.MatchResult) []types.Suggestion {
	if o.rewrite == nil {
		o.rewrite = rewriting.RewriteProfile
	}
	return o.rewrite
}

func (o *Orchestrator) reorderer() func([]string, *types.MatchResult) []string {
	if o.reorder == nil {
		o.reorder = rewriting.ReorderSkills
	}
	return o.reorder
}

func (o *Orchestrator) explainer() func(*types.Profile, *types.JobPosting, *types.MatchResult, []types.Suggestion, []string) *types.Explanation {
	if o.explain == nil {
		o.explain = explaining.BuildExplanation
	}
	return o.explain
}
