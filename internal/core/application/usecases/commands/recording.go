package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/trail"
)

// recordStatusChange appends the history and audit entries that accompany a
// completed lifecycle transition. It runs inside the caller's transaction so
// the entries land together with the order update.
func recordStatusChange(
	ctx context.Context,
	uow TrailRepoFactory,
	aggregate *order.Order,
	actor string,
	note string,
	oldCode string,
	reason string,
	at time.Time,
) error {
	history, err := trail.NewStatusHistoryEntry(
		kernel.NewUUID(), aggregate.ID(), aggregate.Status().Code(), actor, note, at)
	if err != nil {
		return err
	}
	if err = uow.StatusHistoryRepository().Append(ctx, history); err != nil {
		return err
	}

	audit, err := trail.NewAuditLogEntry(
		kernel.NewUUID(), aggregate.ID(), actor,
		trail.ActionStatusChange, oldCode, aggregate.Status().Code(), reason, at)
	if err != nil {
		return err
	}
	return uow.AuditLogRepository().Append(ctx, audit)
}
