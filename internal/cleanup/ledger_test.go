package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/command"
)

// fakeRunner records commands instead of executing them.
type fakeRunner struct {
	mu       sync.Mutex
	commands []string
}

func (f *fakeRunner) Run(_ context.Context, cmdText string, _ ...command.Option) (*command.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmdText)
	return &command.Result{}, nil
}

func newTestLedger() (*Ledger, *fakeRunner) {
	r := &fakeRunner{}
	return NewLedger(r, logr.Discard()), r
}

func TestLedger_CleanupDeletesOnlyUnclaimed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	claimed := filepath.Join(dir, "claimed.txt")
	unclaimed := filepath.Join(dir, "unclaimed.txt")
	require.NoError(t, os.WriteFile(claimed, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(unclaimed, []byte("b"), 0o644))

	l, _ := newTestLedger()
	l.Register(claimed, KindFile, "", "artifact A")
	l.Register(unclaimed, KindFile, "", "artifact B")
	l.Unregister(claimed)

	l.Cleanup(context.Background())

	assert.FileExists(t, claimed)
	assert.NoFileExists(t, unclaimed)
	assert.Zero(t, l.Len())
}

func TestLedger_CleanupRemovesDirectoriesRecursively(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	build := filepath.Join(dir, "tmp_build")
	require.NoError(t, os.MkdirAll(filepath.Join(build, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(build, "nested", "f"), []byte("x"), 0o644))

	l, _ := newTestLedger()
	l.Register(build, KindDir, "", "build dir")
	l.Cleanup(context.Background())

	assert.NoDirExists(t, build)
}

func TestLedger_CleanupSkipsMissingPaths(t *testing.T) {
	t.Parallel()
	l, runner := newTestLedger()
	l.Register(filepath.Join(t.TempDir(), "never-created"), KindFile, "someone", "gone already")

	l.Cleanup(context.Background())

	assert.Empty(t, runner.commands)
	assert.Zero(t, l.Len())
}

func TestLedger_OwnedArtifactsDeletedViaRunner(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	owned := filepath.Join(dir, "plugin")
	require.NoError(t, os.MkdirAll(owned, 0o755))

	l, runner := newTestLedger()
	l.Register(owned, KindDir, "alice", "plugin dir")
	l.Cleanup(context.Background())

	require.Len(t, runner.commands, 1)
	assert.Equal(t, fmt.Sprintf("rm -rf %s", owned), runner.commands[0])
}

func TestLedger_ClearTouchesNothing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	l, runner := newTestLedger()
	l.Register(path, KindFile, "", "kept artifact")
	l.Clear()

	assert.FileExists(t, path)
	assert.Empty(t, runner.commands)
	assert.Zero(t, l.Len())
}

func TestLedger_ConcurrentRegisterUnregister(t *testing.T) {
	t.Parallel()
	l, _ := newTestLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := fmt.Sprintf("/tmp/artifact-%d", i)
			l.Register(path, KindFile, "", "concurrent")
			if i%2 == 0 {
				l.Unregister(path)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, l.Len())
	for _, e := range l.Entries() {
		assert.True(t, strings.HasPrefix(e.Path, "/tmp/artifact-"))
	}
}
