// Package jobs provides the background scheduler for report runs.
//
// The scheduler keeps one cron entry per armed report schedule, using
// github.com/robfig/cron/v3 with a custom cron.Schedule whose next fire
// is computed from the schedule's cadence rather than a cron expression.
//
// # Usage
//
// The scheduler implements ports.TimerRegistry, so command handlers arm and
// disarm timers through the port while main owns the lifecycle:
//
//	scheduler := jobs.NewScheduler(runHandler, uowFactory, logger)
//
//	// Arm timers for schedules already in storage.
//	if err := scheduler.Reconcile(ctx); err != nil {
//		log.Fatal("Failed to reconcile schedules:", err)
//	}
//
//	scheduler.Start()
//	defer scheduler.Stop()
//
// # Error Handling
//
// A failed run is logged and the timer stays armed: the next occurrence
// fires normally and exports everything accumulated since the last
// successful watermark.
package jobs
