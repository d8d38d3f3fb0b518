package commands_test

import (
	"testing"
	"time"

	"sitebuilder/internal/core/application/usecases/commands"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateAdminDetailsCommand_Validation(t *testing.T) {
	admin := adminActor(t)
	orderID := kernel.NewUUID()

	t.Run("should reject empty edit", func(t *testing.T) {
		_, err := commands.NewUpdateAdminDetailsCommand(admin, orderID, nil, nil, nil)
		require.ErrorIs(t, err, commands.ErrNoAdminDetailsProvided)
	})

	t.Run("should reject zero delivery date", func(t *testing.T) {
		var zero time.Time
		_, err := commands.NewUpdateAdminDetailsCommand(admin, orderID, nil, &zero, nil)
		require.ErrorIs(t, err, commands.ErrDeliveryDateMustNotBeZero)
	})

	t.Run("should reject timeline append without message", func(t *testing.T) {
		_, err := commands.NewUpdateAdminDetailsCommand(admin, orderID, nil, nil,
			&commands.TimelineAppend{Status: order.StatusDesign})
		require.ErrorIs(t, err, commands.ErrTimelineMessageIsRequired)
	})
}

func TestUpdateAdminDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, kernel.NewUUID())
	notes := "rush order, prioritize"
	eta := time.Now().UTC().Add(7 * 24 * time.Hour)
	entry := &commands.TimelineAppend{Status: order.StatusPending, Message: "Kickoff call scheduled"}

	cmd, err := commands.NewUpdateAdminDetailsCommand(adminActor(t), target.ID(), &notes, &eta, entry)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAdminDetailsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "rush order, prioritize", target.AdminNotes())
	assert.True(t, target.EstimatedDeliveryDate().Equal(eta))
	timeline := target.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, "Kickoff call scheduled", timeline[1].Message())
	assert.Equal(t, order.StatusPending, target.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAdminDetailsCommandHandler_Handle_NotesOnlyKeepsTimeline(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, kernel.NewUUID())
	notes := "waiting on customer assets"

	cmd, err := commands.NewUpdateAdminDetailsCommand(adminActor(t), target.ID(), &notes, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAdminDetailsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Len(t, target.Timeline(), 1)
	assert.Equal(t, 5, target.Progress())
}

func TestUpdateAdminDetailsCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	notes := "nope"
	cmd, err := commands.NewUpdateAdminDetailsCommand(customerActor(t), kernel.NewUUID(), &notes, nil, nil)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateAdminDetailsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}
