package ports

import (
	"context"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/refund"
)

// RefundRepository defines the persistence contract for refund records.
//
// Settlement is conditional: marking a record refunded only succeeds where
// the stored row is still pending, so two concurrent settlements of the
// same record credit the wallet exactly once.
type RefundRepository interface {
	// Add persists a new pending refund record.
	Add(ctx context.Context, record *refund.Record) error

	// Update persists a settled record. Fails with refund.ErrAlreadyRefunded
	// when the stored row was already settled by another transaction.
	Update(ctx context.Context, record *refund.Record) error

	// Get retrieves a refund record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*refund.Record, error)
}
