// Package counterrepo implements named monotonic counters on top of a
// single-row-per-name table. Order identifiers are allocated from the
// "orders" counter.
package counterrepo

import (
	"context"

	"buyback/internal/pkg/errs"

	"gorm.io/gorm"
)

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormSequenceGenerator implements SequenceGenerator using GORM.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a new GORM sequence generator.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next atomically increments the named counter and returns the new value.
// The upsert makes the first allocation create the row, and the row lock
// taken by the update serializes concurrent allocations of the same name.
func (g *GormSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
