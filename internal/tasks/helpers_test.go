package tasks

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/config"
	"github.com/hostprep/hostprep/internal/ui"
)

// fakeRunner records every command and answers through respond. A nil
// respond answers everything with exit 0.
type fakeRunner struct {
	mu       sync.Mutex
	commands []string
	respond  func(cmd string) (*command.Result, error)
}

func (f *fakeRunner) Run(_ context.Context, cmd string, _ ...command.Option) (*command.Result, error) {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()

	if f.respond != nil {
		return f.respond(cmd)
	}
	return &command.Result{ExitCode: 0}, nil
}

func (f *fakeRunner) ran() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func newTaskContext(t *testing.T, cfg *config.Config, runner command.Runner) *Context {
	t.Helper()
	log := ui.NewLogger("", &bytes.Buffer{}, ui.NewStyles(false))
	return NewContext(context.Background(), cfg, runner, cleanup.NewLedger(runner, log.Logr()), log)
}
