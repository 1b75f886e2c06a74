// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
//
// Every lifecycle transition writes the order, its status-history entry,
// and its audit entry inside one unit of work, so a transition either lands
// completely or not at all.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrailRepoFactory provides access to the append-only history and audit
	// repositories within a transaction.
	TrailRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
		AuditLogRepository() ports.AuditLogRepository
	}

	// SequenceCounterFactory provides access to the atomic sequence counter
	// within a transaction.
	SequenceCounterFactory interface {
		SequenceCounter() ports.SequenceCounter
	}

	// OrderUoW manages transactions for lifecycle transitions: the order
	// plus its history and audit writes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TrailRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW additionally exposes the sequence counter. Used by the open
	// command, the only one that allocates sequence numbers.
	UoW interface {
		OrderUoW
		SequenceCounterFactory
	}

	// UoWFactory creates new unit of work instances for operations that
	// touch the sequence counter.
	UoWFactory interface {
		Create() UoW
	}
)
