package refundrepo

import (
	"context"
	"errors"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/refund"
	"buyback/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRefundRepository implements RefundRepository using GORM.
type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRefundRepository creates a new GORM refund repository.
func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pending refund record to the database.
func (r *GormRefundRepository) Add(ctx context.Context, record *refund.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves a settled record. The update only matches a row that is
// still pending, so a record settled by a concurrent transaction fails
// with ErrAlreadyRefunded and the caller's wallet credit rolls back.
func (r *GormRefundRepository) Update(ctx context.Context, record *refund.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&RefundDTO{}).
		Where("id = ? AND status = ?", dto.ID, string(refund.Pending)).
		Updates(map[string]any{
			"status":     dto.Status,
			"settled_at": dto.SettledAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return refund.ErrAlreadyRefunded
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a refund record by ID.
func (r *GormRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RefundDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
