package commands

import (
	"context"
	"log/slog"
	"time"

	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"
)

// ChangeStatusCommandHandler handles admin-driven status transitions.
// Applies the transition to the aggregate, persists it, and optionally mails
// the customer after the transaction commits.
type ChangeStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning orders and customers plus a Notifier for
// the opt-in customer mail.
func NewChangeStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status transition command.
// Only admins may transition orders. A transition to the current status is a
// no-op that still succeeds. The notification is sent only after a committed
// change; a mail failure is logged, never surfaced, since the transition
// itself already took effect.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.RequestedBy().IsAdmin() {
		return errs.NewPermissionDeniedError("change order status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := target.Status()
	if err = target.ChangeStatus(cmd.NewStatus(), cmd.Message(), time.Now().UTC()); err != nil {
		return err
	}

	changed := target.Status() != previous

	var notification ports.StatusNotification
	if cmd.NotifyCustomer() && changed {
		cust, custErr := uow.CustomerRepository().Get(ctx, target.OwnerID())
		if custErr != nil {
			return custErr
		}

		message := cmd.Message()
		if message == "" {
			message, _ = target.Status().DefaultMessage()
		}

		notification = ports.StatusNotification{
			Order:    target,
			Customer: cust,
			Status:   target.Status(),
			Message:  message,
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.NotifyCustomer() && changed {
		if err = h.notifier.NotifyStatusChanged(ctx, notification); err != nil {
			h.logger.Warn("status notification failed",
				"orderId", cmd.OrderID().String(),
				"status", target.Status().String(),
				"error", err)
		}
	}

	return nil
}
