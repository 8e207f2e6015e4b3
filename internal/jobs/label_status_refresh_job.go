package jobs

import (
	"context"
	"log/slog"

	"shippinglabel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LabelStatusRefresher refreshes the status of labels not refreshed yet.
type LabelStatusRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshLabelStatusCommand) (int, error)
}

// LabelStatusRefreshJob periodically refreshes the status of purchased
// labels whose status has not been refreshed in their order's session.
type LabelStatusRefreshJob struct {
	handler  LabelStatusRefresher
	batch    int
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLabelStatusRefreshJob creates the refresh job. At most batch labels are
// refreshed per run.
func NewLabelStatusRefreshJob(
	handler LabelStatusRefresher,
	batch int,
	schedule string,
	logger *slog.Logger,
) *LabelStatusRefreshJob {
	return &LabelStatusRefreshJob{
		handler:  handler,
		batch:    batch,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "label_status_refresh_job"),
	}
}

// Start schedules the job.
func (j *LabelStatusRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Label status refresh job started",
		"schedule", j.schedule, "batch", j.batch)
	return nil
}

// RunOnce performs a single refresh pass. Failures of single labels are
// logged; the labels stay pending and are retried on the next pass.
func (j *LabelStatusRefreshJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRefreshLabelStatusCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Label status refresh job misconfigured", "error", err)
		return
	}

	refreshed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Label status refresh failed", "refreshed", refreshed, "error", err)
		return
	}
	if refreshed > 0 {
		j.logger.InfoContext(ctx, "Refreshed label statuses", "count", refreshed)
	}
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *LabelStatusRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Label status refresh job stopped")
}
