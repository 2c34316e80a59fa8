package tasks

import (
	"fmt"
	"os"
)

// ConfigureWSL writes the WSL boot configuration: default login user and
// the systemd toggle.
type ConfigureWSL struct{}

// NewConfigureWSL creates the WSL configuration task.
func NewConfigureWSL() *ConfigureWSL {
	return &ConfigureWSL{}
}

func (t *ConfigureWSL) Name() string { return "Configure WSL" }

func (t *ConfigureWSL) Order() int { return 21 }

func (t *ConfigureWSL) RequiresIdentity() bool { return true }

func (t *ConfigureWSL) RequiresSecret() bool { return false }

func (t *ConfigureWSL) Execute(rc *Context) (Outcome, error) {
	id := rc.Identity
	desired := fmt.Sprintf("[user]\ndefault=%s\n\n[boot]\nsystemd=%t\n", id.Username, id.EnableSystemd)

	path := rc.Config.Paths.WSLConf
	current, err := os.ReadFile(path)
	if err == nil && string(current) == desired {
		rc.Log.Warn("wsl.conf already current, skipping")
		return Skipped, nil
	}

	if err := os.WriteFile(path, []byte(desired), 0o644); err != nil {
		return Success, fmt.Errorf("failed to write %s: %w", path, err)
	}

	rc.Log.Success(fmt.Sprintf("default user %s, systemd=%t", id.Username, id.EnableSystemd))
	return Success, nil
}
