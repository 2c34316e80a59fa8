package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedTask struct {
	name  string
	order int
}

func (n namedTask) Name() string                   { return n.name }
func (n namedTask) Order() int                     { return n.order }
func (n namedTask) RequiresIdentity() bool         { return false }
func (n namedTask) RequiresSecret() bool           { return false }
func (n namedTask) Execute(*Context) (Outcome, error) { return Success, nil }

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register("a", namedTask{name: "A", order: 10}))

	assert.Error(t, reg.Register("", namedTask{name: "empty"}))
	assert.Error(t, reg.Register("a", namedTask{name: "dup"}))
	assert.Equal(t, 1, reg.Len())

	got, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A", got.Name())

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistrySorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.MustRegister("third", namedTask{name: "Third", order: 30})
	reg.MustRegister("first", namedTask{name: "First", order: 10})
	reg.MustRegister("tie-a", namedTask{name: "TieA", order: 20})
	reg.MustRegister("tie-b", namedTask{name: "TieB", order: 20})

	var keys []string
	for _, def := range reg.Sorted() {
		keys = append(keys, def.Key)
	}
	// Orders ascending, equal orders keep registration sequence.
	assert.Equal(t, []string{"first", "tie-a", "tie-b", "third"}, keys)
}

func TestDefaultRegistryOrdering(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	defs := reg.Sorted()
	require.Equal(t, reg.Len(), len(defs))

	var keys []string
	for _, def := range defs {
		keys = append(keys, def.Key)
	}
	assert.Equal(t, []string{
		"mirrors", "update", "base", "optional", "user", "wsl",
		"omz", "zsh-plugins", "zshrc", "yay", "conda", "github",
	}, keys)

	for i := 1; i < len(defs); i++ {
		assert.LessOrEqual(t, defs[i-1].Task.Order(), defs[i].Task.Order())
	}
}
