package tasks

import (
	"fmt"
	"os"
	"strings"

	"github.com/hostprep/hostprep/internal/command"
)

// UpdateSystem refreshes the package databases and upgrades the system,
// with a keyring-refresh recovery path when the first upgrade fails.
type UpdateSystem struct{}

// NewUpdateSystem creates the system update task.
func NewUpdateSystem() *UpdateSystem {
	return &UpdateSystem{}
}

func (t *UpdateSystem) Name() string { return "System update" }

func (t *UpdateSystem) Order() int { return 10 }

func (t *UpdateSystem) RequiresIdentity() bool { return false }

func (t *UpdateSystem) RequiresSecret() bool { return false }

func (t *UpdateSystem) Execute(rc *Context) (Outcome, error) {
	if err := t.clearStaleLock(rc); err != nil {
		return Success, err
	}

	if err := rc.RequireNetwork(); err != nil {
		return Success, err
	}

	if _, err := rc.Runner.Run(rc, "pacman -Syy --noconfirm"); err != nil {
		return Success, fmt.Errorf("database refresh failed: %w", err)
	}

	// pacman -Qu exits 1 with empty output when everything is current.
	res, err := rc.Runner.Run(rc, "pacman -Qu", command.NoCheck())
	if err == nil && strings.TrimSpace(res.Stdout) == "" {
		rc.Log.Warn("system already up to date, skipping")
		return Skipped, nil
	}

	rc.Log.Info("upgrading system packages...")
	if _, err := rc.Runner.Run(rc, "pacman -Su --noconfirm"); err == nil {
		rc.Log.Success("system updated")
		return Success, nil
	}

	// Upgrade failures are often stale keyrings; refresh and try again.
	rc.Log.Warn("upgrade failed, refreshing package keyring")
	if _, err := rc.Runner.Run(rc, "pacman-key --init"); err != nil {
		return Success, fmt.Errorf("keyring init failed: %w", err)
	}
	if _, err := rc.Runner.Run(rc, "pacman-key --populate archlinux"); err != nil {
		return Success, fmt.Errorf("keyring populate failed: %w", err)
	}
	if _, err := rc.Runner.Run(rc, "pacman -Syyu --noconfirm"); err != nil {
		return Success, fmt.Errorf("system update failed after keyring refresh: %w", err)
	}

	rc.Log.Success("system updated")
	return Success, nil
}

// clearStaleLock removes a leftover package-manager lock file. A lock held
// by a live process is a precondition failure, not something to force.
func (t *UpdateSystem) clearStaleLock(rc *Context) error {
	lockPath := rc.Config.Paths.PacmanLock

	data, err := os.ReadFile(lockPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot inspect lock file %s: %w", lockPath, err)
	}

	pid := strings.TrimSpace(string(data))
	if pid != "" && isAllDigits(pid) {
		if _, err := os.Stat("/proc/" + pid); err == nil {
			return Preconditionf("package manager lock %s held by running process %s", lockPath, pid)
		}
	}

	if err := os.Remove(lockPath); err != nil {
		return fmt.Errorf("cannot remove stale lock file %s: %w", lockPath, err)
	}
	rc.Log.Success("removed stale package manager lock")
	return nil
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
