package commands

import (
	"context"
	"time"

	"sitebuilder/internal/pkg/errs"
)

// UpdateAdminDetailsCommandHandler handles admin bookkeeping edits.
// Notes and delivery estimates never touch the timeline or progress; an
// explicit timeline append is the only way this command grows the history.
type UpdateAdminDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateAdminDetailsCommandHandler creates a handler for admin edits.
func NewUpdateAdminDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateAdminDetailsCommandHandler {
	return UpdateAdminDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the admin details command.
// Only admins edit these fields. All requested edits apply atomically.
func (h *UpdateAdminDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateAdminDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.RequestedBy().IsAdmin() {
		return errs.NewPermissionDeniedError("update admin details")
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

	now := time.Now().UTC()

	if notes := cmd.AdminNotes(); notes != nil {
		target.SetAdminNotes(*notes, now)
	}

	if date := cmd.EstimatedDeliveryDate(); date != nil {
		if err = target.SetEstimatedDeliveryDate(*date, now); err != nil {
			return err
		}
	}

	if entry := cmd.TimelineAppend(); entry != nil {
		if err = target.AppendTimelineEvent(entry.Status, entry.Message, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
