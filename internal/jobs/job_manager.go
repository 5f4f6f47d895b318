package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the service together.
type JobManager struct {
	routeCompletionJob *RouteCompletionJob
}

// NewJobManager wires every job to its command handler.
func NewJobManager(completer RouteCompleter, routeCompletionSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		routeCompletionJob: NewRouteCompletionJob(completer, routeCompletionSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.routeCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start route completion job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running passes.
func (jm *JobManager) StopAll() {
	jm.routeCompletionJob.Stop()
}
