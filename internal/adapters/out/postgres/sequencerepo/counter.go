// Package sequencerepo implements the atomic sequence counter on Postgres.
// The counter is a single row; issuing the next number is one UPDATE ..
// RETURNING statement, so concurrent callers are serialized by the store
// and can never read the same value.
package sequencerepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const counterName = "order_export"

// SequenceRowDTO represents the single counter row.
type SequenceRowDTO struct {
	Name  string `gorm:"primaryKey;type:varchar(32)"`
	Value int64
}

// TableName overrides GORM's default naming to use "order_sequence".
func (SequenceRowDTO) TableName() string {
	return "order_sequence"
}

// GormSequenceCounter implements SequenceCounter using GORM.
type GormSequenceCounter struct {
	db *gorm.DB
}

// NewGormSequenceCounter creates a new GORM sequence counter.
func NewGormSequenceCounter(db *gorm.DB) *GormSequenceCounter {
	return &GormSequenceCounter{db: db}
}

// EnsureRow seeds the counter row if it does not exist yet. Numbers start
// above startValue. Safe to call on every startup.
func (c *GormSequenceCounter) EnsureRow(ctx context.Context, startValue int64) error {
	return c.db.WithContext(ctx).Exec(`
		INSERT INTO order_sequence (name, value)
		VALUES (?, ?)
		ON CONFLICT (name) DO NOTHING
	`, counterName, startValue).Error
}

// Next atomically increments the counter and returns the new value. The
// increment and read happen in one statement; splitting them would let two
// concurrent callers issue the same number.
func (c *GormSequenceCounter) Next(ctx context.Context) (int64, error) {
	var value int64
	result := c.db.WithContext(ctx).Raw(`
		UPDATE order_sequence
		SET value = value + 1
		WHERE name = ?
		RETURNING value
	`, counterName).Scan(&value)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("sequence counter row %q is missing", counterName)
	}

	return value, nil
}
