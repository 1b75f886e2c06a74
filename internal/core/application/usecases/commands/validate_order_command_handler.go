package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/services"
)

// ValidateOrderCommandHandler handles the UnderReview to Validated
// transition. The export validator runs first; a failing result surfaces
// every reason at once and leaves the order untouched.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.ExportValidator
}

// NewValidateOrderCommandHandler creates a handler for validate operations.
func NewValidateOrderCommandHandler(uowFactory OrderUoWFactory) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewExportValidator(),
	}
}

// Handle processes the validate command. Returns *services.
// ValidationFailedError with the full reason list when checks fail.
func (h *ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
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

	result, err := h.validator.Validate(aggregate)
	if err != nil {
		return err
	}
	if !result.Passed() {
		return result.AsError()
	}

	oldCode := aggregate.Status().Code()
	if err = aggregate.MarkValidated(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "ready for export", oldCode, "", now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
