// Package jobs provides scheduled background tasks for the shipping label
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only call application command handlers.
//
// # Available Jobs
//
// 1. StateEvictionJob - drops the live state of orders idle for longer than
// STATE_IDLE_TTL (schedule STATE_EVICTION_SCHEDULE)
// 2. LabelStatusRefreshJob - dispatches a statusResponse for every live label
// whose status was not refreshed yet (schedule LABEL_STATUS_REFRESH_SCHEDULE)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewStateEvictionJob(evictHandler, 30*time.Minute, "0 */5 * * * *", logger),
//		jobs.NewLabelStatusRefreshJob(refreshHandler, 50, "*/30 * * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Handler errors are logged and the job keeps its schedule
// - A refresh pass still running when the next one is due is skipped
// - Failed job starts will stop any already running jobs
package jobs
