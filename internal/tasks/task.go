package tasks

import "fmt"

// Outcome is the non-failure result of a task execution. A failure is an
// ordinary returned error.
type Outcome int

const (
	// Success means the task did its work.
	Success Outcome = iota
	// Skipped means the goal state already held and no work was done.
	Skipped
)

// Task is one unit of provisioning work.
type Task interface {
	// Name returns the human-readable display name.
	Name() string

	// Order is the execution-order key; lower runs first.
	Order() int

	// RequiresIdentity reports whether the task needs a target identity.
	RequiresIdentity() bool

	// RequiresSecret reports whether the task needs the identity's
	// credential in addition to the identity itself.
	RequiresSecret() bool

	// Execute performs the task against the shared run context. It must be
	// idempotent: when the goal state already holds it returns Skipped and
	// changes nothing.
	Execute(rc *Context) (Outcome, error)
}

// PreconditionError reports an environmental requirement a task cannot meet
// (missing privilege, a lock held by a live process). It is never retried.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// Preconditionf builds a PreconditionError.
func Preconditionf(format string, args ...any) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}
