// Package jobs provides scheduled background tasks for the print shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutosaveJob - writes orders.txt and order_queue.txt on a schedule
// 2. ConfigReloadJob - re-reads system_config.txt and swaps the active configuration
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(saveStateHandler, configPath, configStore, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. A config file that is
// missing or fails validation never replaces the active configuration.
// Failed job starts stop any already running jobs.
package jobs
