package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
	err   error
}

func (j *countingJob) Execute(context.Context) (int, error) {
	j.calls.Add(1)
	return 2, j.err
}

func TestSweepJobRunsImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterSweepJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "storage-sweep", m.Jobs()[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return m.LastSweep().Runs >= 1 }, 2*time.Second, 10*time.Millisecond)
	last := m.LastSweep()
	assert.Equal(t, 2, last.LastRemoved)
	assert.Empty(t, last.LastError)
	assert.False(t, last.LastRunAt.IsZero())
	assert.GreaterOrEqual(t, job.calls.Load(), int32(1))

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	assert.NoError(t, m.Stop())
}

func TestSweepJobErrorDoesNotStopScheduler(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("backend down")}
	require.NoError(t, m.RegisterSweepJob(job, 0))

	m.Start()
	defer m.Stop()

	assert.Eventually(t, func() bool { return m.LastSweep().Runs >= 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "backend down", m.LastSweep().LastError)
	assert.True(t, m.IsStarted())
}

func TestLastSweepBeforeFirstRun(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	assert.Zero(t, m.LastSweep().Runs)
	assert.True(t, m.LastSweep().LastRunAt.IsZero())
}
