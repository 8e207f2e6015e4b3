package jobs

import (
	"context"
	"log/slog"
	"time"

	"shippinglabel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// IdleStateEvictor removes idle order states.
type IdleStateEvictor interface {
	Handle(ctx context.Context, cmd commands.EvictIdleStatesCommand) (int, error)
}

// StateEvictionJob periodically drops the live state of orders nobody
// touched for the configured idle time.
type StateEvictionJob struct {
	handler  IdleStateEvictor
	idleFor  time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStateEvictionJob creates the eviction job. schedule is a six-field cron
// expression (with seconds).
func NewStateEvictionJob(
	handler IdleStateEvictor,
	idleFor time.Duration,
	schedule string,
	logger *slog.Logger,
) *StateEvictionJob {
	return &StateEvictionJob{
		handler:  handler,
		idleFor:  idleFor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "state_eviction_job"),
	}
}

// Start schedules the job.
func (j *StateEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "State eviction job started",
		"schedule", j.schedule, "idle_for", j.idleFor)
	return nil
}

// RunOnce performs a single eviction pass.
func (j *StateEvictionJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewEvictIdleStatesCommand(j.idleFor)
	if err != nil {
		j.logger.ErrorContext(ctx, "State eviction job misconfigured", "error", err)
		return
	}

	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "State eviction job failed", "error", err)
		return
	}
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Evicted idle order states", "count", evicted)
	}
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *StateEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "State eviction job stopped")
}
