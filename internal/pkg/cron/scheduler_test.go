package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce_RunsEveryJob(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var first, second atomic.Int32

	s.AddJob("first", time.Hour, func(context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	// A failing job must not stop the rest of the pass.
	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestStartStop_RunsImmediatelyAndStopsCleanly(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("sweep", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	// First run happens on start, not after the first tick.
	assert.Eventually(t, func() bool { return runs.Load() >= 1 },
		time.Second, 10*time.Millisecond)

	s.Stop()
	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")
}
