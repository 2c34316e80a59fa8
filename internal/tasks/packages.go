package tasks

import (
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/config"
)

// InstallPackages installs one configured package set. The bulk install is
// attempted first; on failure each package is retried individually, and the
// per-task AllowPartial policy decides whether leftover failures fail the
// task or are reported as warnings.
type InstallPackages struct {
	name  string
	order int
	pick  func(*config.Config) config.PackageSet
}

// NewInstallBasePackages creates the base package set task.
func NewInstallBasePackages() *InstallPackages {
	return &InstallPackages{
		name:  "Install base packages",
		order: 11,
		pick:  func(c *config.Config) config.PackageSet { return c.Packages.Base },
	}
}

// NewInstallOptionalPackages creates the optional package set task.
func NewInstallOptionalPackages() *InstallPackages {
	return &InstallPackages{
		name:  "Install optional packages",
		order: 12,
		pick:  func(c *config.Config) config.PackageSet { return c.Packages.Optional },
	}
}

func (t *InstallPackages) Name() string { return t.name }

func (t *InstallPackages) Order() int { return t.order }

func (t *InstallPackages) RequiresIdentity() bool { return false }

func (t *InstallPackages) RequiresSecret() bool { return false }

func (t *InstallPackages) Execute(rc *Context) (Outcome, error) {
	set := t.pick(rc.Config)
	if len(set.Names) == 0 {
		rc.Log.Warn("no packages configured, skipping")
		return Skipped, nil
	}

	missing := missingPackages(rc, set.Names)
	if len(missing) == 0 {
		rc.Log.Warn("all packages already installed, skipping")
		return Skipped, nil
	}

	rc.Log.Info(fmt.Sprintf("installing %d packages...", len(missing)))
	if _, err := rc.Runner.Run(rc, "pacman -S --noconfirm "+strings.Join(missing, " ")); err == nil {
		rc.Log.Success("packages installed")
		return Success, nil
	}

	rc.Log.Warn("bulk install failed, retrying packages individually")
	var failed []string
	for _, pkg := range missing {
		if _, err := rc.Runner.Run(rc, "pacman -S --noconfirm "+pkg); err != nil {
			rc.Log.Error(pkg)
			failed = append(failed, pkg)
			continue
		}
		rc.Log.Success(pkg)
	}

	if len(failed) == 0 {
		rc.Log.Success("all packages installed individually")
		return Success, nil
	}
	if set.AllowPartial {
		rc.Log.Warn("failed to install: " + strings.Join(failed, ", "))
		return Success, nil
	}
	return Success, fmt.Errorf("failed to install packages: %s", strings.Join(failed, ", "))
}

// missingPackages filters the set down to packages not yet installed.
func missingPackages(rc *Context, names []string) []string {
	var missing []string
	for _, pkg := range names {
		res, err := rc.Runner.Run(rc, "pacman -Q "+pkg, command.NoCheck(), command.Unmasked())
		if err != nil || res.ExitCode != 0 {
			missing = append(missing, pkg)
		}
	}
	return missing
}
