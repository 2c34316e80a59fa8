package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllUnitsExecute(t *testing.T) {
	t.Parallel()
	var count atomic.Int32

	units := []Unit{
		{Name: "a", Func: func(context.Context) error { count.Add(1); return nil }},
		{Name: "b", Func: func(context.Context) error { count.Add(1); return nil }},
		{Name: "c", Func: func(context.Context) error { count.Add(1); return nil }},
	}

	results := Run(context.Background(), units)
	require.Len(t, results, 3)
	assert.Equal(t, int32(3), count.Load())
	for i, r := range results {
		assert.Equal(t, units[i].Name, r.Name)
		assert.NoError(t, r.Err)
	}
}

func TestRun_EmptyUnits(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Run(context.Background(), nil))
	assert.Nil(t, Run(context.Background(), []Unit{}))
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	t.Parallel()
	errB := errors.New("clone failed")

	units := []Unit{
		{Name: "a", Func: func(context.Context) error { return nil }},
		{Name: "b", Func: func(context.Context) error { return errB }},
		{Name: "c", Func: func(context.Context) error { return nil }},
	}

	results := Run(context.Background(), units)
	failed := Failures(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Name)
	assert.ErrorIs(t, failed[0].Err, errB)
}

func TestFailures_NoneFailed(t *testing.T) {
	t.Parallel()
	results := []Result{{Name: "a"}, {Name: "b"}}
	assert.Empty(t, Failures(results))
}
