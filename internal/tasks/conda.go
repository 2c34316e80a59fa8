package tasks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
)

// InstallConda downloads and installs Miniconda for the target user. Both
// the installer script and the half-installed directory are ledger entries
// until the install completes.
type InstallConda struct{}

// NewInstallConda creates the Miniconda bootstrap task.
func NewInstallConda() *InstallConda {
	return &InstallConda{}
}

func (t *InstallConda) Name() string { return "Install Miniconda" }

func (t *InstallConda) Order() int { return 41 }

func (t *InstallConda) RequiresIdentity() bool { return true }

func (t *InstallConda) RequiresSecret() bool { return false }

func (t *InstallConda) Execute(rc *Context) (Outcome, error) {
	id := rc.Identity
	condaDir := filepath.Join(id.Home, "miniconda3")
	installer := filepath.Join(id.Home, "miniconda.sh")

	if _, err := os.Stat(condaDir); err == nil {
		rc.Log.Warn("Miniconda already installed, skipping")
		return Skipped, nil
	}

	rc.Ledger.Register(installer, cleanup.KindFile, id.Username, "Miniconda installer")
	rc.Ledger.Register(condaDir, cleanup.KindDir, id.Username, "Miniconda directory (partial)")

	if err := rc.RequireNetwork(); err != nil {
		return Success, err
	}

	script := fmt.Sprintf(`
wget -q %[1]s -O %[2]s
bash %[2]s -b -p %[3]s
rm %[2]s
%[3]s/bin/conda init zsh
%[3]s/bin/conda config --set auto_activate_base false
`, rc.Config.Installers.CondaURL, installer, condaDir)

	if _, err := rc.Runner.Run(rc, script, command.AsUser(id.Username)); err != nil {
		return Success, fmt.Errorf("miniconda install failed: %w", err)
	}

	rc.Ledger.Unregister(installer)
	rc.Ledger.Unregister(condaDir)
	rc.Log.Success("Miniconda installed")
	return Success, nil
}
