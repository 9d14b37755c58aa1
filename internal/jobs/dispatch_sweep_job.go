package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepInterval matches the cadence the dispatch flow was designed
// around: frequent enough that an unassigned order is retried quickly, slow
// enough that the driver services are not hammered.
const DefaultSweepInterval = 2 * time.Minute

// DispatchSweepJob runs the reconciliation sweep on a fixed interval.
// Every run attempts to assign a driver to each unassigned delivery record.
type DispatchSweepJob struct {
	handler  *commands.DispatchUnassignedCommandHandler
	cron     *cron.Cron
	interval time.Duration
	logger   *slog.Logger
}

// NewDispatchSweepJob creates the sweep job. A non-positive interval falls
// back to DefaultSweepInterval.
func NewDispatchSweepJob(
	handler *commands.DispatchUnassignedCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *DispatchSweepJob {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &DispatchSweepJob{
		handler:  handler,
		cron:     cron.New(),
		interval: interval,
		logger:   logger.With("component", "dispatch_sweep_job"),
	}
}

// Start schedules the sweep. Per-record outcomes are handled inside the
// sweep itself; only a failure to read the backlog reaches this log line.
func (j *DispatchSweepJob) Start() error {
	spec := fmt.Sprintf("@every %s", j.interval)

	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchUnassignedCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep command creation failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job started", "interval", j.interval.String())
	return nil
}

// Stop stops the sweep job and waits for a sweep already in flight to finish.
func (j *DispatchSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job stopped")
}
