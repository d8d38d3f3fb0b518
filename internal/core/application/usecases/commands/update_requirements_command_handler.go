package commands

import (
	"context"
	"time"

	"sitebuilder/internal/pkg/errs"
)

// UpdateRequirementsCommandHandler handles customer-side requirement edits.
// Requirements belong to the customer, so the operation is owner-only; an
// order belonging to someone else is reported as not found rather than
// forbidden, so the endpoint never confirms foreign order ids.
type UpdateRequirementsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateRequirementsCommandHandler creates a handler for requirement edits.
func NewUpdateRequirementsCommandHandler(uowFactory OrderUoWFactory) UpdateRequirementsCommandHandler {
	return UpdateRequirementsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the requirements update command.
// The order must belong to the requesting actor and still be in pending or
// requirements status; later phases reject the edit with an invalid state
// error and leave the order untouched.
func (h *UpdateRequirementsCommandHandler) Handle(ctx context.Context, cmd UpdateRequirementsCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !target.OwnerID().IsEqual(cmd.RequestedBy().ID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	if err = target.UpdateRequirements(cmd.Requirements(), time.Now().UTC()); err != nil {
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
