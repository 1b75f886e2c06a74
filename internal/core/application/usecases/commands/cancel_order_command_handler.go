package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles cancellation from UnderReview,
// Validated, or Exported. The cancellation actor, timestamp, and reason
// land on the order in the same transaction as the trail entries.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command. An illegal transition fails with the
// order unchanged.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	oldCode := aggregate.Status().Code()
	if err = aggregate.Cancel(cmd.Actor(), now, cmd.Reason()); err != nil {
		return err
	}

	if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "cancelled", oldCode, cmd.Reason(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
