package ports

import (
	"context"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
//
// Update applies wallet changes as a guarded balance delta rather than a
// blind overwrite: a debit only succeeds where the stored balance still
// covers it, so concurrent claims can never drive a wallet negative even
// when both loaded the same snapshot. Pending wallet transactions are
// appended to the statement in the same transaction.
type PartnerRepository interface {
	// Add persists a new partner aggregate with its agents.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate, applying
	// pending wallet transactions as guarded balance deltas. Fails with
	// partner.ErrInsufficientBalance when a debit no longer fits the
	// stored balance.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier,
	// including its pickup agents.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByPhone retrieves a partner aggregate by phone number.
	GetByPhone(ctx context.Context, phone string) (*partner.Partner, error)

	// GetByAgentPhone retrieves the partner owning the pickup agent with
	// the given phone number.
	GetByAgentPhone(ctx context.Context, phone string) (*partner.Partner, error)

	// GetByPincode retrieves the active partners serving the given
	// pincode. Pickup agents are not loaded.
	GetByPincode(ctx context.Context, pincode string) ([]*partner.Partner, error)
}
