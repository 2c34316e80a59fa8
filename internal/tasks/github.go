package tasks

import (
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/command"
)

// ConfigureGitHub installs the GitHub CLI if needed, walks the user through
// its login flow, and best-effort syncs git identity from the GitHub API.
type ConfigureGitHub struct{}

// NewConfigureGitHub creates the GitHub configuration task.
func NewConfigureGitHub() *ConfigureGitHub {
	return &ConfigureGitHub{}
}

func (t *ConfigureGitHub) Name() string { return "Configure GitHub" }

func (t *ConfigureGitHub) Order() int { return 50 }

func (t *ConfigureGitHub) RequiresIdentity() bool { return true }

func (t *ConfigureGitHub) RequiresSecret() bool { return false }

func (t *ConfigureGitHub) Execute(rc *Context) (Outcome, error) {
	user := rc.Identity.Username

	if !command.Exists(rc, rc.Runner, "gh") {
		pkgs := strings.Join(rc.Config.Packages.GitHubCLI, " ")
		if _, err := rc.Runner.Run(rc, "pacman -S --noconfirm "+pkgs); err != nil {
			return Success, fmt.Errorf("installing GitHub CLI failed: %w", err)
		}
	}

	status, err := rc.Runner.Run(rc, "gh auth status", command.AsUser(user), command.NoCheck())
	if err == nil && status.ExitCode == 0 {
		rc.Log.Warn("GitHub CLI already authenticated, skipping")
		return Skipped, nil
	}

	rc.Log.Info("follow the prompts to authenticate (SSH protocol, web browser)")
	// Interactive; a declined login is not a task failure.
	if _, err := rc.Runner.Run(rc, "gh auth login", command.AsUser(user), command.NoCheck()); err != nil {
		return Success, fmt.Errorf("gh auth login failed to run: %w", err)
	}

	t.syncGitIdentity(rc, user)
	return Success, nil
}

// syncGitIdentity copies name and email from the GitHub profile into the
// global git config. Best effort only.
func (t *ConfigureGitHub) syncGitIdentity(rc *Context, user string) {
	name, err := rc.Runner.Run(rc, "gh api user -q .name", command.AsUser(user))
	if err != nil || strings.TrimSpace(name.Stdout) == "" {
		rc.Log.Warn("could not read GitHub profile, git identity left unchanged")
		return
	}
	email, err := rc.Runner.Run(rc, "gh api user -q .email", command.AsUser(user))
	if err != nil {
		rc.Log.Warn("could not read GitHub email, git identity left unchanged")
		return
	}

	gitName := strings.TrimSpace(name.Stdout)
	gitEmail := strings.TrimSpace(email.Stdout)
	if _, err := rc.Runner.Run(rc, fmt.Sprintf("git config --global user.name '%s'", gitName), command.AsUser(user)); err != nil {
		rc.Log.Warn("setting git user.name failed")
		return
	}
	if _, err := rc.Runner.Run(rc, fmt.Sprintf("git config --global user.email '%s'", gitEmail), command.AsUser(user)); err != nil {
		rc.Log.Warn("setting git user.email failed")
		return
	}
	rc.Log.Success("git identity configured for " + gitName)
}
