package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/trail"
)

// StatusHistoryRepository defines the persistence contract for status
// history. The interface is append-only on purpose: no update or delete
// exists, so history written once stays written.
type StatusHistoryRepository interface {
	// Append persists a new status-history entry.
	Append(ctx context.Context, entry *trail.StatusHistoryEntry) error

	// GetAllForOrder retrieves the full history of an order in recording
	// order, oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.StatusHistoryEntry, error)
}

// AuditLogRepository defines the persistence contract for audit entries.
// Append-only for the same reason as StatusHistoryRepository.
type AuditLogRepository interface {
	// Append persists a new audit-log entry.
	Append(ctx context.Context, entry *trail.AuditLogEntry) error

	// GetAllForOrder retrieves all audit entries of an order in recording
	// order, oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.AuditLogEntry, error)
}
