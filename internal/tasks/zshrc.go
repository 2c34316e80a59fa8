package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var pluginsLinePattern = regexp.MustCompile(`(?m)^plugins=\([^)]*\)`)

// ConfigureZshrc applies idempotent line-level edits to the target user's
// .zshrc: the Oh My Zsh plugin list, the EDITOR export, and the fastfetch
// greeting.
type ConfigureZshrc struct{}

// NewConfigureZshrc creates the .zshrc configuration task.
func NewConfigureZshrc() *ConfigureZshrc {
	return &ConfigureZshrc{}
}

func (t *ConfigureZshrc) Name() string { return "Configure .zshrc" }

func (t *ConfigureZshrc) Order() int { return 32 }

func (t *ConfigureZshrc) RequiresIdentity() bool { return true }

func (t *ConfigureZshrc) RequiresSecret() bool { return false }

func (t *ConfigureZshrc) Execute(rc *Context) (Outcome, error) {
	path := filepath.Join(rc.Identity.Home, ".zshrc")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		rc.Log.Warn(".zshrc not found, skipping")
		return Skipped, nil
	}
	if err != nil {
		return Success, fmt.Errorf("cannot read %s: %w", path, err)
	}

	original := string(data)
	content := t.setPluginsLine(rc, original)
	content = ensureLine(content, `(?m)^export EDITOR=.*$`, "export EDITOR=nano")
	// [ \t] only: \s would consume the trailing newline and break the
	// unchanged-file round trip.
	content = ensureLine(content, `(?m)^fastfetch[ \t]*$`, "fastfetch")

	if content == original {
		rc.Log.Warn(".zshrc already current, skipping")
		return Skipped, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Success, fmt.Errorf("cannot write %s: %w", path, err)
	}

	rc.Log.Success(".zshrc updated")
	return Success, nil
}

// setPluginsLine rewrites the Oh My Zsh plugins declaration to include the
// configured plugin set. Files without a plugins line are left untouched.
func (t *ConfigureZshrc) setPluginsLine(rc *Context, content string) string {
	names := make([]string, 0, len(rc.Config.Shell.Plugins))
	for name := range rc.Config.Shell.Plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	desired := "plugins=(" + strings.Join(append([]string{"git", "z"}, names...), " ") + ")"
	if !pluginsLinePattern.MatchString(content) {
		rc.Log.Warn("no plugins declaration found in .zshrc")
		return content
	}
	return pluginsLinePattern.ReplaceAllString(content, desired)
}

// ensureLine replaces the first match of pattern with line, or appends the
// line when the pattern is absent.
func ensureLine(content, pattern, line string) string {
	re := regexp.MustCompile(pattern)
	if re.MatchString(content) {
		return re.ReplaceAllString(content, line)
	}
	return strings.TrimRight(content, "\n") + "\n\n" + line + "\n"
}
