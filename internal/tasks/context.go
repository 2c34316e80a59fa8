package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/cleanup"
	"github.com/hostprep/hostprep/internal/command"
	"github.com/hostprep/hostprep/internal/config"
	"github.com/hostprep/hostprep/internal/netcheck"
	"github.com/hostprep/hostprep/internal/ui"
)

// Context wraps all dependencies and shared state a task needs. One Context
// is built per run and passed to every task; during parallel sub-unit
// execution it is read-only.
type Context struct {
	context.Context
	Config   *config.Config
	Runner   command.Runner
	Ledger   *cleanup.Ledger
	Log      *ui.Logger
	Identity *Identity
}

// NewContext creates a run context.
func NewContext(ctx context.Context, cfg *config.Config, runner command.Runner, ledger *cleanup.Ledger, log *ui.Logger) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Runner:   runner,
		Ledger:   ledger,
		Log:      log,
		Identity: &Identity{Shell: "/bin/zsh", EnableSystemd: true},
	}
}

// RequireNetwork probes the configured endpoint and fails when unreachable.
// Network-bound tasks call this before doing work.
func (rc *Context) RequireNetwork() error {
	nc := rc.Config.NetworkCheck
	if netcheck.Probe(nc.Host, nc.Port, nc.Timeout()) {
		return nil
	}
	return fmt.Errorf("network unreachable (probe %s:%d failed)", nc.Host, nc.Port)
}

// Identity carries the target account for identity-bound tasks. The secret
// is write-once and never rendered in clear.
type Identity struct {
	Username      string
	Shell         string
	EnableSystemd bool
	Home          string

	secret    string
	secretSet bool
}

// Assign sets the target username and immediately derives the home
// directory, keeping the two consistent.
func (i *Identity) Assign(ctx context.Context, r command.Runner, username string) {
	i.Username = username
	i.Home = resolveHome(ctx, r, username)
}

// SetSecret stores the credential. Write-once: a second call is rejected.
func (i *Identity) SetSecret(secret string) error {
	if i.secretSet {
		return fmt.Errorf("secret already set for identity %s", i.Username)
	}
	i.secret = secret
	i.secretSet = true
	return nil
}

// Secret returns the stored credential in clear, for command assembly only.
func (i *Identity) Secret() string {
	return i.secret
}

// HasSecret reports whether a credential was collected.
func (i *Identity) HasSecret() bool {
	return i.secretSet
}

// String renders the identity with the secret redacted.
func (i *Identity) String() string {
	return fmt.Sprintf("identity{user=%s shell=%s home=%s secret=***}", i.Username, i.Shell, i.Home)
}

// resolveHome asks the shell for the account's home directory, falling back
// to the conventional location for accounts that do not exist yet.
func resolveHome(ctx context.Context, r command.Runner, username string) string {
	res, err := r.Run(ctx, "eval echo ~"+username, command.NoCheck(), command.Unmasked())
	if err == nil && res.ExitCode == 0 {
		home := strings.TrimSpace(res.Stdout)
		if home != "" && !strings.HasPrefix(home, "~") {
			return home
		}
	}
	return "/home/" + username
}
