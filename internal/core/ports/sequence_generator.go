package ports

import "context"

// SequenceGenerator allocates monotonically increasing numbers from named
// counters. Order identifiers are derived from the "orders" sequence; two
// concurrent allocations never observe the same value.
type SequenceGenerator interface {
	// Next atomically increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
}
