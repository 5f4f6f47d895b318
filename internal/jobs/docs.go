// Package jobs provides scheduled background tasks for the shipping service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
// They sit outside the core: the domain never reads the clock on its own, the
// job passes the current time into the command it issues.
//
// # Available Jobs
//
// RouteCompletionJob marks every active route whose arrival has passed as
// completed. It runs every minute by default; ROUTE_COMPLETION_SCHEDULE
// overrides the schedule.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(completeArrivedRoutesHandler, cfg.RouteCompletionSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the job waits for the next tick. An invalid
// schedule fails StartAll.
package jobs
