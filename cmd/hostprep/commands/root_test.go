package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootSubcommands(t *testing.T) {
	t.Parallel()

	root := Root()
	assert.Equal(t, "hostprep", root.Use)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"setup", "tasks", "init", "version", "completion"}, names)
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	cmd := Completion()
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
	assert.True(t, cmd.DisableFlagsInUseLine)
	assert.NotNil(t, cmd.RunE)
}

func TestTasksCommandListsCatalog(t *testing.T) {
	t.Parallel()

	cmd := Tasks()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Configure package mirrors")
	assert.Contains(t, out.String(), "Install Yay")
}

func TestSetupFlags(t *testing.T) {
	t.Parallel()

	cmd := Setup()
	for _, name := range []string{"config", "tasks", "keep-going"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
