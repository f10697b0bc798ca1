// Package jobs provides scheduled background tasks for the shipment service.
//
// Jobs are cron based (github.com/robfig/cron/v3, seconds field enabled) and
// call application command handlers, never repositories directly.
//
// # Available Jobs
//
// LoadingLockJob locks the loading record of every order at Shipped or later
// that is still open. It runs every minute unless LOCK_SWEEP_SCHEDULE says
// otherwise; overlapping runs are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lockShippedRecordsHandler, cfg.LockSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
