// Package tracker records per-task outcomes for the end-of-run summary.
//
// The tracker is append-only and presentation-only: the orchestrator writes
// to it but never reads it back to make control-flow decisions.
package tracker

import (
	"sync"
	"time"
)

// Status is the terminal result of a task execution.
type Status string

const (
	// StatusSuccess means the task did its work.
	StatusSuccess Status = "success"
	// StatusSkipped means the goal state already held; no work was done.
	StatusSkipped Status = "skipped"
	// StatusFailed means the task terminated with an error.
	StatusFailed Status = "failed"
)

// Record is one task's tracked result.
type Record struct {
	Name    string
	Status  Status
	Message string
	Elapsed time.Duration
}

// Summary aggregates the run for reporting.
type Summary struct {
	Success int
	Skipped int
	Failed  int
	Total   int
	Elapsed time.Duration
}

// Tracker is an append-only, concurrency-safe log of task results.
type Tracker struct {
	mu      sync.Mutex
	records []Record
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{}
}

// Record appends one result in execution order.
func (t *Tracker) Record(name string, status Status, message string, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, Record{
		Name:    name,
		Status:  status,
		Message: message,
		Elapsed: elapsed,
	})
}

// Records returns a snapshot of all recorded results.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Summarize produces counts and the total elapsed duration.
func (t *Tracker) Summarize() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{Total: len(t.records)}
	for _, r := range t.records {
		switch r.Status {
		case StatusSuccess:
			s.Success++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
		s.Elapsed += r.Elapsed
	}
	return s
}
