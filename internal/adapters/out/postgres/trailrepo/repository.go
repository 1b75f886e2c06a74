package trailrepo

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/trail"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GORM status history
// repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts a new status-history entry.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, entry *trail.StatusHistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves the full history of an order, oldest first.
func (r *GormStatusHistoryRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.StatusHistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*trail.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts a new audit-log entry.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *trail.AuditLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := auditFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves all audit entries of an order, oldest first.
func (r *GormAuditLogRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.AuditLogEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AuditLogDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*trail.AuditLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := auditToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
