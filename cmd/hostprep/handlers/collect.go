package handlers

import (
	"context"
	"errors"
	"regexp"

	"github.com/charmbracelet/huh"

	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/tasks"
)

// usernameRegex validates account name format: 1-32 lowercase alphanumeric
// starting with a letter, hyphens and underscores allowed.
var usernameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

var shellOptions = []huh.Option[string]{
	huh.NewOption("zsh", "/bin/zsh"),
	huh.NewOption("bash", "/bin/bash"),
	huh.NewOption("fish", "/usr/bin/fish"),
}

// collectIdentity prompts for the target account details when the plan
// contains identity-bound tasks. The password is collected only when a
// selected task needs it, and only once per run.
func collectIdentity(ctx context.Context, rc *tasks.Context, runner command.Runner, plan []tasks.Definition) error {
	needsIdentity, needsSecret := false, false
	for _, def := range plan {
		needsIdentity = needsIdentity || def.Task.RequiresIdentity()
		needsSecret = needsSecret || def.Task.RequiresSecret()
	}
	if !needsIdentity {
		return nil
	}

	var (
		username string
		password string
		confirm  string
	)
	shell := rc.Identity.Shell
	systemd := rc.Identity.EnableSystemd

	fields := []huh.Field{
		huh.NewInput().
			Title("Username").
			Description("Target account for the development environment").
			Placeholder("dev").
			Value(&username).
			Validate(validateUsername),
		huh.NewSelect[string]().
			Title("Login shell").
			Options(shellOptions...).
			Value(&shell),
		huh.NewConfirm().
			Title("Enable systemd in WSL?").
			Value(&systemd),
	}

	if needsSecret {
		fields = append(fields,
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != password {
						return errors.New("passwords do not match")
					}
					return nil
				}),
		)
	}

	err := huh.NewForm(huh.NewGroup(fields...).Title("Target account")).RunWithContext(ctx)
	if err != nil {
		return wizardErr(err)
	}

	rc.Identity.Shell = shell
	rc.Identity.EnableSystemd = systemd
	rc.Identity.Assign(ctx, runner, username)
	if needsSecret {
		if err := rc.Identity.SetSecret(password); err != nil {
			return err
		}
	}
	return nil
}

func validateUsername(s string) error {
	if !usernameRegex.MatchString(s) {
		return errors.New("lowercase letters, digits, hyphens and underscores; must start with a letter")
	}
	return nil
}
