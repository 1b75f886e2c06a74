package commands

import (
	"context"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/trail"
	"orderdesk/internal/core/domain/services"
)

// OpenOrderCommandHandler handles the business logic for opening an order.
// A first open allocates the sequence number and moves the order from
// Pending to UnderReview; opening an already-reviewed order is a no-op for
// the state machine, so duplicate client triggers are harmless.
type OpenOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewOpenOrderCommandHandler creates a handler for open operations.
// Requires a UoWFactory because opening is the only command that touches
// the sequence counter.
func NewOpenOrderCommandHandler(uowFactory UoWFactory) OpenOrderCommandHandler {
	return OpenOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open command. Sequence allocation, the status
// transition, and the trail entries are committed in one transaction.
func (h *OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) error {
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

	allocator, err := services.NewSequenceAllocator(uow.SequenceCounter())
	if err != nil {
		return err
	}
	number, allocated, err := allocator.AssignIfAbsent(ctx, aggregate)
	if err != nil {
		return err
	}
	if allocated {
		audit, auditErr := trail.NewAuditLogEntry(
			kernel.NewUUID(), aggregate.ID(), cmd.Actor(),
			trail.ActionSequenceAssigned, "", strconv.FormatInt(number, 10), "", now)
		if auditErr != nil {
			return auditErr
		}
		if err = uow.AuditLogRepository().Append(ctx, audit); err != nil {
			return err
		}
	}

	opened := false
	if aggregate.Status() == order.Pending {
		oldCode := aggregate.Status().Code()
		if err = aggregate.BeginReview(); err != nil {
			return err
		}
		if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "opened for review", oldCode, "", now); err != nil {
			return err
		}
		opened = true
	}

	if !opened && !allocated {
		return uow.Commit(ctx)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
