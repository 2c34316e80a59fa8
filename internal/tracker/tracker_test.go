package tracker

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_SummarizeCounts(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Record("update", StatusSuccess, "", 3*time.Second)
	tr.Record("user", StatusSkipped, "already exists", 100*time.Millisecond)
	tr.Record("yay", StatusFailed, "network unavailable", 9*time.Second)

	s := tr.Summarize()
	assert.Equal(t, 1, s.Success)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 12*time.Second+100*time.Millisecond, s.Elapsed)
}

func TestTracker_RecordsPreserveExecutionOrder(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Record("first", StatusSuccess, "", 0)
	tr.Record("second", StatusFailed, "boom", 0)
	tr.Record("third", StatusSkipped, "", 0)

	records := tr.Records()
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{records[0].Name, records[1].Name, records[2].Name})
}

func TestTracker_RecordsReturnsCopy(t *testing.T) {
	t.Parallel()
	tr := New()
	tr.Record("only", StatusSuccess, "", 0)

	records := tr.Records()
	records[0].Name = "mutated"

	assert.Equal(t, "only", tr.Records()[0].Name)
}

func TestTracker_ConcurrentAppend(t *testing.T) {
	t.Parallel()
	tr := New()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record(fmt.Sprintf("task-%d", i), StatusSuccess, "", time.Millisecond)
		}()
	}
	wg.Wait()

	s := tr.Summarize()
	assert.Equal(t, 40, s.Success)
	assert.Equal(t, 40, s.Total)
}

func TestTracker_EmptySummary(t *testing.T) {
	t.Parallel()
	s := New().Summarize()
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Elapsed)
}
