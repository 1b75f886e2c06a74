// Package trailrepo persists the append-only traceability records: status
// history and audit log. Neither repository exposes update or delete, which
// is how the write-once invariant is enforced.
package trailrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/trail"

	"github.com/google/uuid"
)

// StatusHistoryDTO represents the database row for one lifecycle transition.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	StatusCode string    `gorm:"type:varchar(2)"`
	Actor      string
	Note       string
	RecordedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// AuditLogDTO represents the database row for one audited mutation.
type AuditLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Actor      string
	Action     string `gorm:"type:varchar(32)"`
	OldValue   string
	NewValue   string
	Reason     string
	RecordedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_audit_log".
func (AuditLogDTO) TableName() string {
	return "order_audit_log"
}

func historyFromDomain(entry *trail.StatusHistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		StatusCode: entry.StatusCode(),
		Actor:      entry.Actor(),
		Note:       entry.Note(),
		RecordedAt: entry.RecordedAt(),
	}
}

func historyToDomain(dto StatusHistoryDTO) (*trail.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return trail.NewStatusHistoryEntry(id, orderID, dto.StatusCode, dto.Actor, dto.Note, dto.RecordedAt)
}

func auditFromDomain(entry *trail.AuditLogEntry) AuditLogDTO {
	return AuditLogDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		Actor:      entry.Actor(),
		Action:     entry.Action().String(),
		OldValue:   entry.OldValue(),
		NewValue:   entry.NewValue(),
		Reason:     entry.Reason(),
		RecordedAt: entry.RecordedAt(),
	}
}

func auditToDomain(dto AuditLogDTO) (*trail.AuditLogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return trail.NewAuditLogEntry(
		id, orderID, dto.Actor, trail.ActionType(dto.Action),
		dto.OldValue, dto.NewValue, dto.Reason, dto.RecordedAt)
}
