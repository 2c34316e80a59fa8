// Package handlers implements the CLI command logic.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"

	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/config"
	"github.com/hostprep/hostprep/internal/provision"
	"github.com/hostprep/hostprep/internal/tasks"
	"github.com/hostprep/hostprep/internal/tracker"
	"github.com/hostprep/hostprep/internal/ui"
)

// SetupOptions carries the setup command's flag values.
type SetupOptions struct {
	ConfigPath string
	Selection  string
	KeepGoing  bool
}

// Factory function variables - can be replaced in tests.
var (
	geteuid     = os.Geteuid
	stdoutIsTTY = ui.StdoutIsTTY
)

// Setup runs one provisioning session: task selection, identity collection,
// sequential execution, rollback on abort, and the final summary.
func Setup(ctx context.Context, opts SetupOptions) error {
	if geteuid() != 0 {
		return fmt.Errorf("hostprep setup must run as root (try sudo)")
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(stdoutIsTTY())
	log := ui.NewLogger(cfg.LogFile, os.Stdout, styles)
	defer log.Close()

	registry := tasks.DefaultRegistry()
	defs := registry.Sorted()

	log.Section("Task catalog")
	for i, def := range defs {
		line := fmt.Sprintf("  %2d. %s", i+1, def.Task.Name())
		log.Print(line, line)
	}

	keys, err := selectTasks(ctx, opts.Selection, defs)
	if err != nil {
		return err
	}

	runner := command.NewShellRunner(command.RunnerConfig{
		Proxy:    cfg.Proxy,
		Attempts: cfg.Retry.Attempts,
		Delay:    cfg.Retry.Delay(),
	}, log.Logr())

	ledger := cleanup.NewLedger(runner, log.Logr())
	track := tracker.New()

	orch := &provision.Orchestrator{
		Registry:  registry,
		Tracker:   track,
		Log:       log,
		OnFailure: failurePolicy(opts, log),
	}

	plan, err := orch.Plan(keys)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := tasks.NewContext(ctx, cfg, runner, ledger, log)
	if err := collectIdentity(ctx, rc, runner, plan); err != nil {
		return err
	}

	runErr := orch.Run(rc, plan)
	if runErr != nil {
		// The run context may already be cancelled; rollback gets its own.
		ledger.Cleanup(context.Background())
	} else {
		ledger.Clear()
	}

	summary := track.Summarize()
	log.Print(ui.RenderSummary(styles, track.Records(), summary), ui.PlainSummary(track.Records(), summary))

	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d tasks failed", summary.Failed, summary.Total)
	}

	log.Section("Done")
	log.Info("full log: " + cfg.LogFile)
	if wslChanged(plan) {
		log.Info("restart the instance to apply WSL settings: wsl --terminate <distro>")
	}
	return nil
}

// wslChanged reports whether the plan touched the WSL boot configuration.
func wslChanged(plan []tasks.Definition) bool {
	for _, def := range plan {
		if def.Key == "wsl" {
			return true
		}
	}
	return false
}

// loadConfig loads the configuration file, or the built-in defaults when no
// path was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// selectTasks resolves the operator's task choice, prompting when the
// --tasks flag was not given.
func selectTasks(ctx context.Context, selection string, defs []tasks.Definition) ([]string, error) {
	if selection == "" {
		prompted, err := promptSelection(ctx, len(defs))
		if err != nil {
			return nil, err
		}
		selection = prompted
	}

	indices, err := provision.ParseSelection(selection, len(defs))
	if err != nil {
		return nil, err
	}
	return provision.KeysFor(defs, indices), nil
}

// promptSelection asks for the task selection, validating inline so invalid
// input re-prompts instead of aborting.
func promptSelection(ctx context.Context, n int) (string, error) {
	var input string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tasks to run").
				Description(`Comma-separated numbers and ranges ("1,3-5"), or "a" for all`).
				Placeholder("a").
				Value(&input).
				Validate(func(s string) error {
					_, err := provision.ParseSelection(s, n)
					return err
				}),
		).Title("Task selection"),
	).RunWithContext(ctx)

	if err != nil {
		return "", wizardErr(err)
	}
	return input, nil
}

// failurePolicy builds the continue-or-abort decision applied after a task
// failure. --keep-going always continues; otherwise an interactive session
// asks, and a non-interactive one aborts.
func failurePolicy(opts SetupOptions, log *ui.Logger) func(string, error) bool {
	if opts.KeepGoing {
		return func(string, error) bool { return true }
	}
	if !stdoutIsTTY() {
		return nil
	}
	return func(name string, _ error) bool {
		var cont bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("%s failed. Continue with the remaining tasks?", name)).
			Value(&cont).
			Run()
		if err != nil {
			log.Warn("prompt aborted, stopping the run")
			return false
		}
		return cont
	}
}

// wizardErr maps an aborted prompt onto the run-cancellation error so the
// process exits with the interruption status.
func wizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return provision.ErrCancelled
	}
	return err
}
