// Package refundrepo provides data transfer objects and mapping functions
// for refund record persistence.
package refundrepo

import (
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

// RefundDTO represents the database structure for persisting refund records.
type RefundDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      string    `gorm:"index"`
	PartnerName  string
	PartnerPhone string `gorm:"index"`
	Coins        int
	Reason       string
	Status       string `gorm:"index"`
	CreatedAt    time.Time
	SettledAt    *time.Time
}

// TableName specifies the database table name for refund records.
func (RefundDTO) TableName() string {
	return "refunds"
}

// fromDomain converts a refund record to its database representation.
func fromDomain(record *refund.Record) RefundDTO {
	return RefundDTO{
		ID:           record.ID().Bytes(),
		OrderID:      record.OrderID(),
		PartnerName:  record.PartnerName(),
		PartnerPhone: record.PartnerPhone(),
		Coins:        record.Coins(),
		Reason:       record.Reason(),
		Status:       string(record.Status()),
		CreatedAt:    record.CreatedAt(),
		SettledAt:    record.SettledAt(),
	}
}

// toDomain converts a database DTO to a refund record.
func toDomain(dto RefundDTO) (*refund.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return refund.RestoreRecord(
		id,
		dto.OrderID,
		dto.PartnerName,
		dto.PartnerPhone,
		dto.Coins,
		dto.Reason,
		refund.Status(dto.Status),
		dto.CreatedAt,
		dto.SettledAt,
	)
}
