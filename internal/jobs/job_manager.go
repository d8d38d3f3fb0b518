package jobs

import (
	"fmt"
	"log/slog"

	"sitebuilder/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pastDueReminderJob *PastDueReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(remindPastDueHandler commands.RemindPastDueCommandHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		pastDueReminderJob: NewPastDueReminderJob(remindPastDueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pastDueReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start past-due reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pastDueReminderJob.Stop()
}
