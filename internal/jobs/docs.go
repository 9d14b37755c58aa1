// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for delivery dispatch.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Runs on a configurable interval (2 minutes by
// default) to attempt driver assignment for every unassigned delivery record.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.SweepInterval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Per-record assignment outcomes (no driver, all drivers at capacity, lost
// assignment race) are classified and counted inside the sweep handler and do
// not surface here. The job only logs failures of the sweep itself, such as
// the backlog query failing.
package jobs
