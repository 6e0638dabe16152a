// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is conditional: it applies changes only where the stored status and
// partner assignment still match the snapshot the aggregate was loaded with
// (BaseStatus/BasePartnerPhone). When another transaction changed the order
// in between, Update fails with a version error and the caller retries or
// reports a conflict. This is what makes concurrent claims of the same order
// safe: exactly one claimant's update matches the unclaimed snapshot.
type OrderRepository interface {
	// Add persists a new order aggregate together with its initial log entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and appends its
	// pending log entries. Fails with errs.ErrVersionIsInvalid when the stored
	// row no longer matches the loaded snapshot.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier,
	// including the full audit log.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderID retrieves an order aggregate by its external
	// sequence-derived identifier.
	GetByOrderID(ctx context.Context, orderID string) (*order.Order, error)
}
