package tasks

import (
	"fmt"
	"os"
	"strings"
)

// ConfigureMirrors writes the configured package mirror list, backing up the
// original once.
type ConfigureMirrors struct{}

// NewConfigureMirrors creates the mirror configuration task.
func NewConfigureMirrors() *ConfigureMirrors {
	return &ConfigureMirrors{}
}

func (t *ConfigureMirrors) Name() string { return "Configure package mirrors" }

func (t *ConfigureMirrors) Order() int { return 5 }

func (t *ConfigureMirrors) RequiresIdentity() bool { return false }

func (t *ConfigureMirrors) RequiresSecret() bool { return false }

// Execute renders the mirrorlist from config. Skips when mirror management
// is disabled or the file already holds the rendered content.
func (t *ConfigureMirrors) Execute(rc *Context) (Outcome, error) {
	cfg := rc.Config.Mirrors
	if !cfg.Enabled {
		rc.Log.Warn("mirror configuration disabled, skipping")
		return Skipped, nil
	}

	desired := renderMirrorlist(cfg.Servers)

	current, err := os.ReadFile(cfg.Path)
	if err == nil && string(current) == desired {
		rc.Log.Warn("mirrorlist already configured, skipping")
		return Skipped, nil
	}

	// Preserve the original list once, before the first rewrite.
	if _, err := os.Stat(cfg.BackupPath); os.IsNotExist(err) {
		if len(current) > 0 {
			if err := os.WriteFile(cfg.BackupPath, current, 0o644); err != nil {
				return Success, fmt.Errorf("failed to back up mirrorlist: %w", err)
			}
			rc.Log.Success("backed up original mirrorlist to " + cfg.BackupPath)
		}
	}

	if err := os.WriteFile(cfg.Path, []byte(desired), 0o644); err != nil {
		return Success, fmt.Errorf("failed to write mirrorlist: %w", err)
	}

	rc.Log.Success(fmt.Sprintf("configured %d mirror servers", len(cfg.Servers)))
	return Success, nil
}

// renderMirrorlist produces the mirrorlist file content for the servers.
func renderMirrorlist(servers []string) string {
	var b strings.Builder
	b.WriteString("##\n## Mirrorlist managed by hostprep\n##\n\n")
	for i, server := range servers {
		b.WriteString(fmt.Sprintf("## %d. %s\n", i+1, mirrorHost(server)))
		b.WriteString("Server = " + server + "\n\n")
	}
	return b.String()
}

// mirrorHost extracts the host part of a mirror URL for the comment header.
func mirrorHost(server string) string {
	parts := strings.Split(server, "/")
	if len(parts) > 2 {
		return parts[2]
	}
	return server
}
