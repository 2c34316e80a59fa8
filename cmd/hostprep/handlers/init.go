package handlers

import (
	"fmt"
	"os"

	"github.com/hostprep/hostprep/internal/config"
)

// Init writes the starter configuration template. An existing file is left
// untouched unless force is set.
func Init(outputPath string, force bool) error {
	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(config.StarterYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", outputPath)
	fmt.Println("Review it, then run: hostprep setup --config " + outputPath)
	return nil
}
