package tasks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/config"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	t.Run("existing user skips", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{respond: func(cmd string) (*command.Result, error) {
			if strings.HasPrefix(cmd, "id ") {
				return &command.Result{ExitCode: 0}, nil
			}
			return &command.Result{ExitCode: 0}, nil
		}}

		rc := newTaskContext(t, config.Default(), runner)
		rc.Identity.Username = "dev"

		outcome, err := NewCreateUser().Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Skipped, outcome)
		assert.Len(t, runner.ran(), 1)
	})

	t.Run("creates account and sets password", func(t *testing.T) {
		t.Parallel()

		sudoers := filepath.Join(t.TempDir(), "sudoers")
		require.NoError(t, os.WriteFile(sudoers, []byte("root ALL=(ALL:ALL) ALL\n# %wheel ALL=(ALL:ALL) ALL\n"), 0o644))

		runner := &fakeRunner{respond: func(cmd string) (*command.Result, error) {
			if strings.HasPrefix(cmd, "id ") {
				return &command.Result{ExitCode: 1}, nil
			}
			return &command.Result{ExitCode: 0}, nil
		}}

		cfg := config.Default()
		cfg.Paths.Sudoers = sudoers

		rc := newTaskContext(t, cfg, runner)
		rc.Identity.Username = "dev"
		rc.Identity.Shell = "/bin/zsh"
		require.NoError(t, rc.Identity.SetSecret("hunter2"))

		outcome, err := NewCreateUser().Execute(rc)
		require.NoError(t, err)
		assert.Equal(t, Success, outcome)

		ran := runner.ran()
		require.Len(t, ran, 3)
		assert.Equal(t, "useradd -m -G wheel -s /bin/zsh dev", ran[1])
		assert.Equal(t, "echo 'dev:hunter2' | chpasswd", ran[2])

		updated, err := os.ReadFile(sudoers)
		require.NoError(t, err)
		assert.Contains(t, string(updated), "\n%wheel ALL=(ALL:ALL) ALL\n")
	})

	t.Run("useradd failure surfaces", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{respond: func(cmd string) (*command.Result, error) {
			if strings.HasPrefix(cmd, "id ") {
				return &command.Result{ExitCode: 1}, nil
			}
			return nil, errors.New("exit status 1")
		}}

		rc := newTaskContext(t, config.Default(), runner)
		rc.Identity.Username = "dev"
		require.NoError(t, rc.Identity.SetSecret("hunter2"))

		_, err := NewCreateUser().Execute(rc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "useradd")
	})
}

func TestEnableWheelSudo(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "sudoers")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("uncomments the disabled rule", func(t *testing.T) {
		t.Parallel()

		path := write(t, "# %wheel ALL=(ALL:ALL) ALL\n")
		require.NoError(t, enableWheelSudo(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%wheel ALL=(ALL:ALL) ALL\n", string(got))
	})

	t.Run("active rule left untouched", func(t *testing.T) {
		t.Parallel()

		path := write(t, "%wheel ALL=(ALL:ALL) ALL\n")
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, enableWheelSudo(path))

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("appends when no rule exists", func(t *testing.T) {
		t.Parallel()

		path := write(t, "root ALL=(ALL:ALL) ALL\n")
		require.NoError(t, enableWheelSudo(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "root ALL=(ALL:ALL) ALL\n%wheel ALL=(ALL:ALL) ALL\n", string(got))
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, enableWheelSudo(filepath.Join(t.TempDir(), "absent")))
	})
}
