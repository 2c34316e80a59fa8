package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hostprep/hostprep/internal/async"
	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
)

// InstallZshPlugins clones the configured zsh plugins concurrently, one
// sub-unit per plugin. Each clone is isolated: it carries its own ledger
// entry and its failure is reported as a warning instead of aborting the
// task, unless every plugin fails.
type InstallZshPlugins struct{}

// NewInstallZshPlugins creates the plugin installation task.
func NewInstallZshPlugins() *InstallZshPlugins {
	return &InstallZshPlugins{}
}

func (t *InstallZshPlugins) Name() string { return "Install zsh plugins" }

func (t *InstallZshPlugins) Order() int { return 31 }

func (t *InstallZshPlugins) RequiresIdentity() bool { return true }

func (t *InstallZshPlugins) RequiresSecret() bool { return false }

func (t *InstallZshPlugins) Execute(rc *Context) (Outcome, error) {
	plugins := rc.Config.Shell.Plugins
	if len(plugins) == 0 {
		rc.Log.Warn("no plugins configured, skipping")
		return Skipped, nil
	}

	customDir := filepath.Join(rc.Identity.Home, ".oh-my-zsh", "custom", "plugins")

	// Stable unit order keeps logs and results deterministic.
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	var units []async.Unit
	for _, name := range names {
		pluginPath := filepath.Join(customDir, name)
		if _, err := os.Stat(pluginPath); err == nil {
			rc.Log.Warn(name + " already installed")
			continue
		}
		units = append(units, async.Unit{
			Name: name,
			Func: t.cloneUnit(rc, plugins[name], pluginPath),
		})
	}

	if len(units) == 0 {
		rc.Log.Warn("all plugins already installed, skipping")
		return Skipped, nil
	}

	if err := rc.RequireNetwork(); err != nil {
		return Success, err
	}

	rc.Log.Info(fmt.Sprintf("installing %d plugins concurrently...", len(units)))
	results := async.Run(rc, units)

	for _, r := range results {
		if r.Err != nil {
			rc.Log.Error(fmt.Sprintf("%s: %v", r.Name, r.Err))
		} else {
			rc.Log.Success(r.Name)
		}
	}

	failures := async.Failures(results)
	if len(failures) == len(units) {
		return Success, fmt.Errorf("all %d plugin installs failed", len(units))
	}
	if len(failures) > 0 {
		var names []string
		for _, f := range failures {
			names = append(names, f.Name)
		}
		rc.Log.Warn("plugins failed (continuing): " + strings.Join(names, ", "))
	}
	return Success, nil
}

// cloneUnit builds the sub-unit that clones one plugin under the target
// user, registering the destination for rollback until the clone succeeds.
func (t *InstallZshPlugins) cloneUnit(rc *Context, url, pluginPath string) func(context.Context) error {
	owner := rc.Identity.Username
	return func(ctx context.Context) error {
		rc.Ledger.Register(pluginPath, cleanup.KindDir, owner, "zsh plugin "+filepath.Base(pluginPath))

		clone := fmt.Sprintf("git clone %s %s", url, pluginPath)
		if _, err := rc.Runner.Run(ctx, clone, command.AsUser(owner)); err != nil {
			return err
		}

		rc.Ledger.Unregister(pluginPath)
		return nil
	}
}
