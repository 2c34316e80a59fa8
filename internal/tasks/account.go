package tasks

import (
	"fmt"
	"os"
	"strings"

	"github.com/hostprep/hostprep/internal/command"
)

const (
	wheelRuleDisabled = "# %wheel ALL=(ALL:ALL) ALL"
	wheelRuleEnabled  = "%wheel ALL=(ALL:ALL) ALL"
)

// CreateUser creates the target account with wheel membership and the chosen
// shell, sets its password, and enables wheel sudo access.
type CreateUser struct{}

// NewCreateUser creates the account creation task.
func NewCreateUser() *CreateUser {
	return &CreateUser{}
}

func (t *CreateUser) Name() string { return "Create user" }

func (t *CreateUser) Order() int { return 20 }

func (t *CreateUser) RequiresIdentity() bool { return true }

func (t *CreateUser) RequiresSecret() bool { return true }

func (t *CreateUser) Execute(rc *Context) (Outcome, error) {
	id := rc.Identity
	if command.UserExists(rc, rc.Runner, id.Username) {
		rc.Log.Warn(fmt.Sprintf("user %s already exists, skipping", id.Username))
		return Skipped, nil
	}

	cmd := fmt.Sprintf("useradd -m -G wheel -s %s %s", id.Shell, id.Username)
	if _, err := rc.Runner.Run(rc, cmd); err != nil {
		return Success, fmt.Errorf("useradd failed: %w", err)
	}

	// The credential travels only inside the command text, which the runner
	// masks before logging.
	setpw := fmt.Sprintf("echo '%s:%s' | chpasswd", id.Username, id.Secret())
	if _, err := rc.Runner.Run(rc, setpw); err != nil {
		return Success, fmt.Errorf("setting password failed: %w", err)
	}

	if err := enableWheelSudo(rc.Config.Paths.Sudoers); err != nil {
		return Success, err
	}

	rc.Log.Success(fmt.Sprintf("created user %s (shell %s)", id.Username, id.Shell))
	return Success, nil
}

// enableWheelSudo uncomments or appends the wheel rule in the sudoers file.
// Idempotent: an already-active rule is left untouched.
func enableWheelSudo(sudoersPath string) error {
	data, err := os.ReadFile(sudoersPath)
	if err != nil {
		return fmt.Errorf("cannot read sudoers: %w", err)
	}

	content := string(data)
	switch {
	case strings.Contains(content, wheelRuleDisabled):
		content = strings.Replace(content, wheelRuleDisabled, wheelRuleEnabled, 1)
	case strings.Contains(content, wheelRuleEnabled):
		return nil
	default:
		content = strings.TrimRight(content, "\n") + "\n" + wheelRuleEnabled + "\n"
	}

	if err := os.WriteFile(sudoersPath, []byte(content), 0o440); err != nil {
		return fmt.Errorf("cannot write sudoers: %w", err)
	}
	return nil
}
