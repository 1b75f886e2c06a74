package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetLineStatusCommandHandler_Handle_CancelLine(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.UnderReview)
	cmd, err := commands.NewSetLineStatusCommand(aggregate.ID(), 2, order.LineCancelled, "jdoe")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*trail.AuditLogEntry")).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetLineStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.ActiveLines(), 1)
	repo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetLineStatusCommandHandler_Handle_NoOpWhenAlreadyInStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.UnderReview)
	cmd, err := commands.NewSetLineStatusCommand(aggregate.ID(), 1, order.LineActive, "jdoe")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetLineStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.ActiveLines(), 2)
	uow.AssertExpectations(t)
}

func TestSetLineStatusCommandHandler_Handle_RejectedAfterExport(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.Exported)
	cmd, err := commands.NewSetLineStatusCommand(aggregate.ID(), 1, order.LineCancelled, "jdoe")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetLineStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.Len(t, aggregate.ActiveLines(), 2)
	uow.AssertExpectations(t)
}

func TestSetLineStatusCommandHandler_Handle_UnknownLine(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.UnderReview)
	cmd, err := commands.NewSetLineStatusCommand(aggregate.ID(), 99, order.LineCancelled, "jdoe")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetLineStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
