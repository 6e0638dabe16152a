package ports

import (
	"context"

	"buyback/internal/core/domain/model/coinrange"
)

// CoinRangeRepository defines the persistence contract for the price-to-coin
// mapping table maintained by administrators.
type CoinRangeRepository interface {
	// Add persists a new price band.
	Add(ctx context.Context, band *coinrange.Range) error

	// GetTable loads the full configured table for reward lookups.
	GetTable(ctx context.Context) (*coinrange.Table, error)
}
