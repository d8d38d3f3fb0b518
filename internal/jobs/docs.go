// Package jobs provides scheduled background tasks for the order service.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated through
// JobManager:
//
//	jobManager := jobs.NewJobManager(remindPastDueHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PastDueReminderJob - runs every morning and mails customers whose orders
// are still in progress past their estimated delivery date.
package jobs
