package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.Validated)
	cmd, err := commands.NewCancelOrderCommand(
		aggregate.ID(), "jdoe", "customer asked to cancel", true, commands.DefaultReasonPolicy())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, mock.AnythingOfType("*trail.StatusHistoryEntry")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*trail.AuditLogEntry")).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	require.NotNil(t, aggregate.Cancellation())
	require.Equal(t, "jdoe", aggregate.Cancellation().Actor)
	require.Equal(t, "customer asked to cancel", aggregate.Cancellation().Reason)
	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := makeStoredOrder(t, order.Pending)
	cmd, err := commands.NewCancelOrderCommand(
		aggregate.ID(), "jdoe", "customer asked to cancel", true, commands.DefaultReasonPolicy())
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

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.Equal(t, order.Pending, aggregate.Status())
	require.Nil(t, aggregate.Cancellation())
	uow.AssertExpectations(t)
}
