package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep/cmd/hostprep/handlers"
)

// Tasks returns the command that lists the task catalog.
func Tasks() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the available provisioning tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Tasks(cmd.OutOrStdout())
		},
	}
}
