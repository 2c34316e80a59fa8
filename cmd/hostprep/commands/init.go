package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep/cmd/hostprep/handlers"
)

// Init returns the command that writes a starter configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "hostprep.yaml")
//	--force, -f: Overwrite an existing file
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "hostprep.yaml", "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
