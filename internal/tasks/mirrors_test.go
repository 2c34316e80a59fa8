package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/config"
)

func mirrorConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Mirrors.Enabled = true
	cfg.Mirrors.Servers = []string{
		"https://mirror.one.example/archlinux/$repo/os/$arch",
		"https://mirror.two.example/archlinux/$repo/os/$arch",
	}
	cfg.Mirrors.Path = filepath.Join(dir, "mirrorlist")
	cfg.Mirrors.BackupPath = filepath.Join(dir, "mirrorlist.backup")
	return cfg
}

func TestConfigureMirrors(t *testing.T) {
	t.Parallel()

	t.Run("writes the list and preserves the original", func(t *testing.T) {
		t.Parallel()

		cfg := mirrorConfig(t)
		require.NoError(t, os.WriteFile(cfg.Mirrors.Path, []byte("Server = https://old.example\n"), 0o644))

		rc := newTaskContext(t, cfg, &fakeRunner{})
		outcome, err := NewConfigureMirrors().Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Success, outcome)

		written, err := os.ReadFile(cfg.Mirrors.Path)
		require.NoError(t, err)
		assert.Contains(t, string(written), "Server = https://mirror.one.example/archlinux/$repo/os/$arch")
		assert.Contains(t, string(written), "## 2. mirror.two.example")

		backup, err := os.ReadFile(cfg.Mirrors.BackupPath)
		require.NoError(t, err)
		assert.Equal(t, "Server = https://old.example\n", string(backup))
	})

	t.Run("second run skips", func(t *testing.T) {
		t.Parallel()

		cfg := mirrorConfig(t)
		rc := newTaskContext(t, cfg, &fakeRunner{})
		task := NewConfigureMirrors()

		outcome, err := task.Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Success, outcome)

		outcome, err = task.Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Skipped, outcome)
	})

	t.Run("backup happens once", func(t *testing.T) {
		t.Parallel()

		cfg := mirrorConfig(t)
		require.NoError(t, os.WriteFile(cfg.Mirrors.Path, []byte("original\n"), 0o644))
		rc := newTaskContext(t, cfg, &fakeRunner{})
		task := NewConfigureMirrors()

		_, err := task.Execute(rc)
		require.NoError(t, err)

		// Change the list out from under the task; the backup must survive.
		require.NoError(t, os.WriteFile(cfg.Mirrors.Path, []byte("drift\n"), 0o644))
		_, err = task.Execute(rc)
		require.NoError(t, err)

		backup, err := os.ReadFile(cfg.Mirrors.BackupPath)
		require.NoError(t, err)
		assert.Equal(t, "original\n", string(backup))
	})

	t.Run("disabled skips", func(t *testing.T) {
		t.Parallel()

		cfg := mirrorConfig(t)
		cfg.Mirrors.Enabled = false
		rc := newTaskContext(t, cfg, &fakeRunner{})

		outcome, err := NewConfigureMirrors().Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Skipped, outcome)
		assert.NoFileExists(t, cfg.Mirrors.Path)
	})
}
