package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/tasks"
	"github.com/hostprep/hostprep/internal/ui"
)

func TestSetupRequiresRoot(t *testing.T) {
	orig := geteuid
	geteuid = func() int { return 1000 }
	t.Cleanup(func() { geteuid = orig })

	err := Setup(context.Background(), SetupOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root")
}

func TestSelectTasksWithExplicitSelection(t *testing.T) {
	t.Parallel()

	defs := tasks.DefaultRegistry().Sorted()

	keys, err := selectTasks(context.Background(), "1,3-4", defs)
	require.NoError(t, err)
	assert.Equal(t, []string{"mirrors", "base", "optional"}, keys)

	keys, err = selectTasks(context.Background(), "a", defs)
	require.NoError(t, err)
	assert.Len(t, keys, len(defs))

	_, err = selectTasks(context.Background(), "99", defs)
	assert.Error(t, err)
}

func TestFailurePolicy(t *testing.T) {
	t.Parallel()

	log := ui.NewLogger("", &bytes.Buffer{}, ui.NewStyles(false))

	t.Run("keep-going always continues", func(t *testing.T) {
		t.Parallel()

		policy := failurePolicy(SetupOptions{KeepGoing: true}, log)
		require.NotNil(t, policy)
		assert.True(t, policy("anything", errors.New("boom")))
	})

	t.Run("non-interactive aborts", func(t *testing.T) {
		orig := stdoutIsTTY
		stdoutIsTTY = func() bool { return false }
		t.Cleanup(func() { stdoutIsTTY = orig })

		assert.Nil(t, failurePolicy(SetupOptions{}, log))
	})
}

func TestTasksListing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Tasks(&out))

	listing := out.String()
	assert.Contains(t, listing, " 1. Configure package mirrors")
	assert.Contains(t, listing, "needs target account")
	assert.Contains(t, listing, "github")
}
