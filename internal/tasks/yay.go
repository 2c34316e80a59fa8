package tasks

import (
	"fmt"
	"path/filepath"

	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
)

// InstallYay builds the yay AUR helper from source in a temporary directory
// under the target user. The build directory is ledger-registered so an
// aborted build is rolled back.
type InstallYay struct{}

// NewInstallYay creates the AUR helper bootstrap task.
func NewInstallYay() *InstallYay {
	return &InstallYay{}
}

func (t *InstallYay) Name() string { return "Install Yay" }

func (t *InstallYay) Order() int { return 40 }

func (t *InstallYay) RequiresIdentity() bool { return true }

func (t *InstallYay) RequiresSecret() bool { return true }

func (t *InstallYay) Execute(rc *Context) (Outcome, error) {
	if command.Exists(rc, rc.Runner, "yay") {
		rc.Log.Warn("yay already installed, skipping")
		return Skipped, nil
	}

	id := rc.Identity
	buildDir := filepath.Join(id.Home, "tmp_yay")
	rc.Ledger.Register(buildDir, cleanup.KindDir, id.Username, "yay build directory")

	if err := rc.RequireNetwork(); err != nil {
		return Success, err
	}

	// The sudo -S priming line carries the credential; the runner masks it
	// before logging.
	script := fmt.Sprintf(`
cd %[1]s
rm -rf tmp_yay
mkdir tmp_yay && cd tmp_yay
git clone %[2]s
cd yay
echo '%[3]s' | sudo -S -v
makepkg -si --noconfirm
cd %[1]s
rm -rf tmp_yay
`, id.Home, rc.Config.Installers.YayRepo, id.Secret())

	if _, err := rc.Runner.Run(rc, script, command.AsUser(id.Username)); err != nil {
		// The entry stays registered; cleanup removes the half-built dir.
		return Success, fmt.Errorf("yay build failed: %w", err)
	}

	// The script removed its own build directory.
	rc.Ledger.Unregister(buildDir)
	rc.Log.Success("yay installed")
	return Success, nil
}
