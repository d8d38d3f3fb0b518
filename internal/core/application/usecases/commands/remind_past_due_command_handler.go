package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sitebuilder/internal/core/ports"
)

// RemindPastDueCommandHandler sweeps active orders whose estimated delivery
// date has passed and mails each affected customer a reminder. One failing
// mail does not stop the sweep.
type RemindPastDueCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRemindPastDueCommandHandler creates a handler for the past-due sweep.
func NewRemindPastDueCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RemindPastDueCommandHandler {
	return RemindPastDueCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the past-due sweep.
// Reads the past-due set and their customers in one transaction, then sends
// the reminders after the transaction closes. The sweep modifies nothing, so
// a crash mid-sweep at worst re-sends some reminders on the next run.
func (h *RemindPastDueCommandHandler) Handle(ctx context.Context, cmd RemindPastDueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	pastDue, err := uow.OrderRepository().GetAllPastDue(ctx, now)
	if err != nil {
		return err
	}

	customerRepo := uow.CustomerRepository()
	notifications := make([]ports.StatusNotification, 0, len(pastDue))
	for _, target := range pastDue {
		cust, custErr := customerRepo.Get(ctx, target.OwnerID())
		if custErr != nil {
			h.logger.Warn("past-due sweep skipped order without customer",
				"orderId", target.ID().String(),
				"error", custErr)
			continue
		}

		notifications = append(notifications, ports.StatusNotification{
			Order:    target,
			Customer: cust,
			Status:   target.Status(),
			Message: fmt.Sprintf("The estimated delivery date of %s has passed; the team is on it.",
				target.EstimatedDeliveryDate().Format("January 2, 2006")),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, notification := range notifications {
		if err = h.notifier.NotifyStatusChanged(ctx, notification); err != nil {
			h.logger.Warn("past-due reminder failed",
				"orderId", notification.Order.ID().String(),
				"error", err)
		}
	}

	return nil
}
