package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every lifecycle
// transition writes the order, its history entry, and its audit entry inside
// one unit of work so they land together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to the
	// current transaction.
	StatusHistoryRepository() StatusHistoryRepository

	// AuditLogRepository returns an AuditLogRepository bound to the current
	// transaction.
	AuditLogRepository() AuditLogRepository

	// SequenceCounter returns the atomic sequence counter bound to the
	// current transaction.
	SequenceCounter() SequenceCounter
}
