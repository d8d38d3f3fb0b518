package commands

import (
	"context"
	"time"

	"sitebuilder/internal/pkg/errs"
)

// SetPaymentStatusCommandHandler handles admin payment status updates.
type SetPaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPaymentStatusCommandHandler creates a handler for payment updates.
func NewSetPaymentStatusCommandHandler(uowFactory OrderUoWFactory) SetPaymentStatusCommandHandler {
	return SetPaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status command.
// Only admins record payment outcomes. The payment state is independent of
// the build status; recording it never touches the timeline or progress.
func (h *SetPaymentStatusCommandHandler) Handle(ctx context.Context, cmd SetPaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.RequestedBy().IsAdmin() {
		return errs.NewPermissionDeniedError("set payment status")
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

	if err = target.SetPaymentStatus(cmd.PaymentStatus(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
