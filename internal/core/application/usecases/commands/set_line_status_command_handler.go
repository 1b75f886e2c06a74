package commands

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/trail"
	"orderdesk/internal/pkg/errs"
)

// SetLineStatusCommandHandler handles single-line cancel and reactivate.
// The aggregate rejects line changes once the order left the review flow.
type SetLineStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetLineStatusCommandHandler creates a handler for line status
// operations.
func NewSetLineStatusCommandHandler(uowFactory OrderUoWFactory) SetLineStatusCommandHandler {
	return SetLineStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line status command. Setting a line to its current
// status is a no-op that writes nothing.
func (h *SetLineStatusCommandHandler) Handle(ctx context.Context, cmd SetLineStatusCommand) error {
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

	oldStatus, err := lineStatusOf(aggregate, cmd.LineNumber())
	if err != nil {
		return err
	}
	if oldStatus == cmd.Status() {
		return uow.Commit(ctx)
	}

	switch cmd.Status() {
	case order.LineCancelled:
		err = aggregate.CancelLine(cmd.LineNumber())
	case order.LineActive:
		err = aggregate.ActivateLine(cmd.LineNumber())
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	audit, err := trail.NewAuditLogEntry(
		kernel.NewUUID(), aggregate.ID(), cmd.Actor(),
		trail.ActionLineStatusChange,
		fmt.Sprintf("line %d: %s", cmd.LineNumber(), oldStatus),
		fmt.Sprintf("line %d: %s", cmd.LineNumber(), cmd.Status()),
		"", now)
	if err != nil {
		return err
	}
	if err = uow.AuditLogRepository().Append(ctx, audit); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func lineStatusOf(aggregate *order.Order, lineNumber int) (order.LineStatus, error) {
	for _, line := range aggregate.Lines() {
		if line.LineNumber() == lineNumber {
			return line.Status(), nil
		}
	}
	return "", errs.NewObjectNotFoundError("line number", lineNumber)
}
