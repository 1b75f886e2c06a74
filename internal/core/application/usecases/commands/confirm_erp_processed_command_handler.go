package commands

import (
	"context"
	"time"
)

// ConfirmErpProcessedCommandHandler handles the Exported to ErpProcessed
// transition.
type ConfirmErpProcessedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmErpProcessedCommandHandler creates a handler for ERP
// acknowledgment operations.
func NewConfirmErpProcessedCommandHandler(uowFactory OrderUoWFactory) ConfirmErpProcessedCommandHandler {
	return ConfirmErpProcessedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgment command.
func (h *ConfirmErpProcessedCommandHandler) Handle(ctx context.Context, cmd ConfirmErpProcessedCommand) error {
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
	if err = aggregate.MarkErpProcessed(); err != nil {
		return err
	}

	if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "processed by ERP", oldCode, "", now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
