package tasks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostprep/hostprep/internal/command"
)

// InstallOhMyZsh runs the upstream installer as the target user.
type InstallOhMyZsh struct{}

// NewInstallOhMyZsh creates the Oh My Zsh bootstrap task.
func NewInstallOhMyZsh() *InstallOhMyZsh {
	return &InstallOhMyZsh{}
}

func (t *InstallOhMyZsh) Name() string { return "Install Oh My Zsh" }

func (t *InstallOhMyZsh) Order() int { return 30 }

func (t *InstallOhMyZsh) RequiresIdentity() bool { return true }

func (t *InstallOhMyZsh) RequiresSecret() bool { return false }

func (t *InstallOhMyZsh) Execute(rc *Context) (Outcome, error) {
	omzPath := filepath.Join(rc.Identity.Home, ".oh-my-zsh")
	if _, err := os.Stat(omzPath); err == nil {
		rc.Log.Warn("Oh My Zsh already installed, skipping")
		return Skipped, nil
	}

	if err := rc.RequireNetwork(); err != nil {
		return Success, err
	}

	install := fmt.Sprintf(`sh -c "$(curl -fsSL %s)" "" --unattended`, rc.Config.Shell.OMZInstallURL)
	if _, err := rc.Runner.Run(rc, install, command.AsUser(rc.Identity.Username)); err != nil {
		return Success, fmt.Errorf("installer failed: %w", err)
	}

	rc.Log.Success("Oh My Zsh installed")
	return Success, nil
}
