package handlers

import (
	"fmt"
	"io"

	"github.com/hostprep/hostprep/internal/tasks"
)

// Tasks prints the task catalog in its execution order.
func Tasks(out io.Writer) error {
	for i, def := range tasks.DefaultRegistry().Sorted() {
		marks := ""
		if def.Task.RequiresIdentity() {
			marks = " (needs target account)"
		}
		if _, err := fmt.Fprintf(out, "%2d. %-26s %s%s\n", i+1, def.Task.Name(), def.Key, marks); err != nil {
			return err
		}
	}
	return nil
}
