package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostprep/hostprep/internal/tasks"
	"github.com/hostprep/hostprep/internal/tracker"
	"github.com/hostprep/hostprep/internal/ui"
)

const failureMessageLimit = 50

// Orchestrator drives a selected set of tasks through sequential
// execution, recording every outcome and consulting the failure policy
// before moving past a failed task.
type Orchestrator struct {
	Registry *tasks.Registry
	Tracker  *tracker.Tracker
	Log      *ui.Logger

	// OnFailure decides whether the run continues after a task failure.
	// A nil policy aborts on the first failure.
	OnFailure func(taskName string, err error) bool
}

// Plan resolves the selected keys into tasks ordered by their catalog
// position. Unknown keys are rejected before anything runs.
func (o *Orchestrator) Plan(keys []string) ([]tasks.Definition, error) {
	selected := make(map[string]bool, len(keys))
	for _, key := range keys {
		if _, ok := o.Registry.Get(key); !ok {
			return nil, fmt.Errorf("unknown task %q", key)
		}
		selected[key] = true
	}

	var plan []tasks.Definition
	for _, def := range o.Registry.Sorted() {
		if selected[def.Key] {
			plan = append(plan, def)
		}
	}
	return plan, nil
}

// Run executes the plan in order. Each task's outcome lands in the
// tracker regardless of how it ends. A cancelled context stops the run
// before the next task starts and surfaces as ErrCancelled; a task
// failure surfaces as a TaskError once the failure policy declines to
// continue.
func (o *Orchestrator) Run(rc *tasks.Context, plan []tasks.Definition) error {
	for _, def := range plan {
		select {
		case <-rc.Done():
			return ErrCancelled
		default:
		}

		name := def.Task.Name()
		o.Log.Section(name)

		started := time.Now()
		outcome, err := def.Task.Execute(rc)
		elapsed := time.Since(started)

		if err != nil {
			o.Tracker.Record(name, tracker.StatusFailed, truncateMessage(err.Error()), elapsed)
			// An interrupt that lands mid-task kills the running command and
			// surfaces here as its error. That is a cancellation, not a task
			// failure: the policy is never consulted and the run reports the
			// interruption status.
			if rc.Err() != nil || errors.Is(err, context.Canceled) {
				o.Log.Warn(fmt.Sprintf("%s interrupted", name))
				return ErrCancelled
			}
			o.Log.Error(fmt.Sprintf("%s failed: %v", name, err))
			if o.OnFailure == nil || !o.OnFailure(name, err) {
				return &TaskError{Task: name, Err: err}
			}
			continue
		}

		switch outcome {
		case tasks.Skipped:
			o.Tracker.Record(name, tracker.StatusSkipped, "", elapsed)
			o.Log.Info(fmt.Sprintf("%s skipped", name))
		default:
			o.Tracker.Record(name, tracker.StatusSuccess, "", elapsed)
			o.Log.Success(fmt.Sprintf("%s done in %s", name, elapsed.Round(time.Millisecond)))
		}
	}
	return nil
}

func truncateMessage(msg string) string {
	if len(msg) <= failureMessageLimit {
		return msg
	}
	return msg[:failureMessageLimit-3] + "..."
}
