package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRouteCompletionSchedule runs at second zero of every minute.
const DefaultRouteCompletionSchedule = "0 * * * * *"

// RouteCompleter closes routes whose arrival has passed.
type RouteCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteArrivedRoutesCommand) (int64, error)
}

// RouteCompletionJob periodically marks arrived routes as completed so they
// stop accepting shipments.
type RouteCompletionJob struct {
	handler  RouteCompleter
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRouteCompletionJob creates the job. schedule is a six-field cron
// expression (with seconds); an empty schedule uses DefaultRouteCompletionSchedule.
func NewRouteCompletionJob(handler RouteCompleter, schedule string, logger *slog.Logger) *RouteCompletionJob {
	if schedule == "" {
		schedule = DefaultRouteCompletionSchedule
	}
	return &RouteCompletionJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route-completion"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *RouteCompletionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Route completion job started", "schedule", j.schedule)
	return nil
}

// Run performs a single pass. Failures are logged and retried on the next tick.
func (j *RouteCompletionJob) Run(ctx context.Context) {
	cmd, err := commands.NewCompleteArrivedRoutesCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Route completion job failed", "error", err)
		return
	}

	completed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Route completion job failed", "error", err)
		return
	}
	if completed > 0 {
		j.logger.InfoContext(ctx, "Routes completed", "count", completed, "asOf", cmd.AsOf())
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *RouteCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Route completion job stopped")
}
