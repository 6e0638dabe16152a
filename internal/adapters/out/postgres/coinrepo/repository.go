// Package coinrepo persists the price-to-coin mapping table maintained by
// administrators.
package coinrepo

import (
	"context"

	"buyback/internal/core/domain/model/coinrange"
	"buyback/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoinRangeDTO represents one price band row.
type CoinRangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartPrice int
	EndPrice   int
	Coins      int
}

// TableName specifies the database table name for coin price bands.
func (CoinRangeDTO) TableName() string {
	return "coin_ranges"
}

// GormCoinRangeRepository implements CoinRangeRepository using GORM.
type GormCoinRangeRepository struct {
	db *gorm.DB
}

// NewGormCoinRangeRepository creates a new GORM coin range repository.
func NewGormCoinRangeRepository(db *gorm.DB) *GormCoinRangeRepository {
	return &GormCoinRangeRepository{db: db}
}

// Add persists a new price band.
func (r *GormCoinRangeRepository) Add(ctx context.Context, band *coinrange.Range) error {
	if err := band.ID().Validate(); err != nil {
		return err
	}

	dto := CoinRangeDTO{
		ID:         band.ID().Bytes(),
		StartPrice: band.Start(),
		EndPrice:   band.End(),
		Coins:      band.Coins(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTable loads the full configured table ordered by lower bound.
func (r *GormCoinRangeRepository) GetTable(ctx context.Context) (*coinrange.Table, error) {
	var dtos []CoinRangeDTO
	if err := r.db.WithContext(ctx).Order("start_price").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ranges := make([]*coinrange.Range, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		band, err := coinrange.NewRange(id, dto.StartPrice, dto.EndPrice, dto.Coins)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, band)
	}

	return coinrange.NewTable(ranges), nil
}
