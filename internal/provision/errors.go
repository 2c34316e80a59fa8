package provision

import (
	"errors"
	"fmt"
)

// ErrCancelled reports an operator-requested interruption of the run.
var ErrCancelled = errors.New("run cancelled by operator")

// ValidationError reports rejected user input at selection or collection
// time. Recovered locally by re-prompting, never fatal.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// TaskError wraps a task's terminal failure with its name.
type TaskError struct {
	Task string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s failed: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
