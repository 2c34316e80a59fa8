package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep/cmd/hostprep/handlers"
)

// Setup returns the command that runs the provisioning session.
//
// Without flags the command is fully interactive: it renders the task menu,
// prompts for a selection, and collects the target account details when the
// chosen tasks need them.
//
// Flags:
//
//	--config, -c: Path to configuration YAML file (built-in defaults when omitted)
//	--tasks, -t: Task selection ("1,3-5" or "a"), skips the menu prompt
//	--keep-going, -k: Continue with the remaining tasks when one fails
func Setup() *cobra.Command {
	var opts handlers.SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the provisioning tasks",
		Long: `Run the provisioning tasks.

Renders the task catalog, prompts for a selection, and executes the
chosen tasks in their fixed order. Tasks that configure the target
account ask for username, password, and shell before the run starts.

Interrupting the run (Ctrl+C) rolls back registered partial artifacts
before exiting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Selection, "tasks", "t", "", `Task selection, e.g. "1,3-5" or "a"`)
	cmd.Flags().BoolVarP(&opts.KeepGoing, "keep-going", "k", false, "Continue with remaining tasks when one fails")

	return cmd
}
