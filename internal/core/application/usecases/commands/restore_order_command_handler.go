package commands

import (
	"context"
	"time"
)

// RestoreOrderCommandHandler handles the Cancelled to UnderReview
// transition. Restoring clears the cancellation metadata and forces every
// line of the order back to active, all in one transaction with the trail
// entries.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for restore operations.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restore command. An illegal transition fails with
// the order unchanged.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) error {
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
	if err = aggregate.Restore(); err != nil {
		return err
	}

	if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "restored to review", oldCode, cmd.Reason(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
