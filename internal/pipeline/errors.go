package pipeline

import "fmt"

// InputError reports raw input that is empty or too short to process. It is
// raised before any stage executes, so no partial state is produced.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s input: %s", e.Field, e.Message)
}

// PreconditionError reports a stage invoked without its predecessor's output
// present. This indicates orchestration misuse, not a data problem.
type PreconditionError struct {
	Stage   Stage
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("stage %s requires %s, which is not present", e.Stage, e.Missing)
}

// StageError wraps a failure inside a stage's own algorithm.
type StageError struct {
	Stage Stage
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
