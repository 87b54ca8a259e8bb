// Package scheduler runs the periodic storage maintenance on gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

const (
	DefaultSweepInterval = time.Hour

	sweepJobName = "storage-sweep"
)

// BatchJob processes one batch per call and reports how many items it
// touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SweepStatus describes the most recent scheduled sweep.
type SweepStatus struct {
	Runs        int           `json:"runs"`
	LastRunAt   time.Time     `json:"last_run_at"`
	LastRemoved int           `json:"last_removed"`
	LastError   string        `json:"last_error,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// SchedulerManager owns the gocron scheduler and the status of the sweep
// job it runs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	mu      sync.RWMutex
	started bool
	last    SweepStatus
}

// NewSchedulerManager builds a stopped scheduler running in UTC. Extra
// options go straight to gocron.
func NewSchedulerManager(log logger.Interface, opts ...gocron.SchedulerOption) (*SchedulerManager, error) {
	s, err := gocron.NewScheduler(append([]gocron.SchedulerOption{gocron.WithLocation(time.UTC)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &SchedulerManager{scheduler: s, logger: log}, nil
}

// RegisterSweepJob runs job every interval, the first time as soon as the
// scheduler starts. An overrunning sweep delays the next one instead of
// running alongside it. A non-positive interval means DefaultSweepInterval.
func (m *SchedulerManager) RegisterSweepJob(job BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.runSweep(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("storage", "sweep"),
		gocron.WithName(sweepJobName),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered storage sweep job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runSweep(ctx context.Context, job BatchJob) {
	started := biztime.NowUTC()
	removed, err := job.Execute(ctx)
	elapsed := time.Since(started)

	status := SweepStatus{LastRunAt: started, LastRemoved: removed, Duration: elapsed}
	switch {
	case err != nil:
		status.LastError = err.Error()
		m.logger.Errorw("storage sweep failed", "error", err, "duration", elapsed)
	case removed > 0:
		m.logger.Infow("expired entries swept", "count", removed, "duration", elapsed)
	default:
		m.logger.Debugw("storage sweep found nothing to remove", "duration", elapsed)
	}

	m.mu.Lock()
	status.Runs = m.last.Runs + 1
	m.last = status
	m.mu.Unlock()
}

// LastSweep returns the outcome of the latest scheduled sweep. Runs is zero
// until the first one finishes.
func (m *SchedulerManager) LastSweep() SweepStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *SchedulerManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
// Calling it on a stopped manager is a no-op.
func (m *SchedulerManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Errorw("scheduler shutdown failed", "error", err)
		return err
	}
	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
