package cleanup

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"

	"github.com/hostprep/hostprep/internal/command"
)

// Kind describes what an entry's path points at.
type Kind string

const (
	// KindFile marks a single file.
	KindFile Kind = "file"
	// KindDir marks a directory removed recursively.
	KindDir Kind = "dir"
)

// Entry names one unclaimed artifact.
type Entry struct {
	Path        string
	Kind        Kind
	Owner       string // owning identity, empty for root-owned artifacts
	Description string
}

// Ledger is the process-wide record of artifacts pending rollback.
// Safe for concurrent use by parallel sub-units.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
	runner  command.Runner
	log     logr.Logger
}

// NewLedger creates an empty ledger. Owned artifacts are deleted through the
// runner under their owning identity; ownerless ones directly.
func NewLedger(runner command.Runner, log logr.Logger) *Ledger {
	return &Ledger{runner: runner, log: log}
}

// Register appends an artifact to the ledger.
func (l *Ledger) Register(path string, kind Kind, owner, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		Path:        path,
		Kind:        kind,
		Owner:       owner,
		Description: description,
	})
}

// Unregister removes every entry matching the path. Called by a task once
// its artifact is claimed (permanent) or already removed by the task itself.
func (l *Ledger) Unregister(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.Path != path {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Entries returns a snapshot of the current entries.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of unclaimed entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Cleanup deletes every registered artifact that still exists on disk, then
// empties the ledger. Deletion failures are warnings, not fatal errors.
func (l *Ledger) Cleanup(ctx context.Context) {
	l.mu.Lock()
	entries := l.entries
	l.entries = nil
	l.mu.Unlock()

	if len(entries) == 0 {
		return
	}

	l.log.Info("cleaning up temporary artifacts", "count", len(entries))
	for _, e := range entries {
		if _, err := os.Lstat(e.Path); os.IsNotExist(err) {
			continue
		}
		if err := l.remove(ctx, e); err != nil {
			l.log.Info("could not delete artifact", "path", e.Path, "error", err.Error())
			continue
		}
		l.log.Info("deleted artifact", "path", e.Path, "description", e.Description)
	}
	l.log.Info("cleanup complete")
}

// Clear empties the ledger without touching disk. Used on a fully successful
// run where nothing temporary remains.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// remove deletes one artifact, delegating to the owning identity when set.
func (l *Ledger) remove(ctx context.Context, e Entry) error {
	if e.Owner == "" {
		if e.Kind == KindDir {
			return os.RemoveAll(e.Path)
		}
		return os.Remove(e.Path)
	}

	rm := "rm -f"
	if e.Kind == KindDir {
		rm = "rm -rf"
	}
	if _, err := l.runner.Run(ctx, fmt.Sprintf("%s %s", rm, e.Path), command.AsUser(e.Owner), command.NoCheck()); err != nil {
		return err
	}
	return nil
}
