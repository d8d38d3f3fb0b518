package commands

import (
	"context"
	"time"

	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"
)

// AddDeliveredFileCommandHandler handles build artifact uploads.
// Stores the bytes in the blob store first, then records the file on the
// aggregate, which may auto-advance a development order into revision when
// the first deliverable lands.
type AddDeliveredFileCommandHandler struct {
	uowFactory OrderUoWFactory
	blobs      ports.BlobStore
}

// NewAddDeliveredFileCommandHandler creates a handler for artifact uploads.
func NewAddDeliveredFileCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStore) AddDeliveredFileCommandHandler {
	return AddDeliveredFileCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
	}
}

// Handle processes the file upload command.
// Only admins deliver files. The blob write happens before the transaction
// opens; if the later commit fails the stored blob is simply orphaned and
// reclaimed by storage cleanup, never referenced by an order.
func (h *AddDeliveredFileCommandHandler) Handle(ctx context.Context, cmd AddDeliveredFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.RequestedBy().IsAdmin() {
		return errs.NewPermissionDeniedError("add delivered file")
	}

	url, err := h.blobs.Store(ctx, cmd.OrderID().String(), cmd.FileName(), cmd.Data())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = target.AddDeliveredFile(cmd.FileName(), url, cmd.FileType(), cmd.Description(), time.Now().UTC()); err != nil {
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
