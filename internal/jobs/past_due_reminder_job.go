package jobs

import (
	"context"
	"log/slog"

	"sitebuilder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// pastDueReminderSchedule fires once a day at 09:00 server time.
const pastDueReminderSchedule = "0 0 9 * * *"

// PastDueReminderJob periodically sweeps for orders that blew past their
// estimated delivery date and mails the affected customers.
type PastDueReminderJob struct {
	handler commands.RemindPastDueCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPastDueReminderJob creates the daily past-due reminder job.
func NewPastDueReminderJob(handler commands.RemindPastDueCommandHandler, logger *slog.Logger) *PastDueReminderJob {
	return &PastDueReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "past_due_reminder_job"),
	}
}

// Start schedules the daily sweep.
func (j *PastDueReminderJob) Start() error {
	_, err := j.cron.AddFunc(pastDueReminderSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRemindPastDueCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Past-due reminder job failed to build command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Past-due reminder job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Past-due reminder job started (running daily)")
	return nil
}

// Stop stops the reminder job.
func (j *PastDueReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Past-due reminder job stopped")
}
