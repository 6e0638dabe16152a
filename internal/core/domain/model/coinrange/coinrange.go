// Package coinrange maps quoted device prices to the coin reward a partner
// pays when claiming an order. The mapping is a table of inclusive price
// ranges maintained by administrators; an order's reward is looked up once
// at creation and frozen.
package coinrange

import (
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/pkg/errs"
)

// Range maps an inclusive price band to a coin amount.
type Range struct {
	id    kernel.UUID
	start int
	end   int
	coins int
}

// NewRange creates a price band. Start and end are inclusive bounds;
// start must not exceed end and coins must be positive.
func NewRange(id kernel.UUID, start, end, coins int) (*Range, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("start",
			fmt.Errorf("%d is negative", start))
	}
	if end < start {
		return nil, errs.NewValueIsOutOfRangeError("end", end, start, int(^uint(0)>>1))
	}
	if coins <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("coins",
			fmt.Errorf("%d is not greater than 0", coins))
	}

	return &Range{id: id, start: start, end: end, coins: coins}, nil
}

// ID returns the range's unique identifier.
func (r *Range) ID() kernel.UUID { return r.id }

// Start returns the inclusive lower price bound.
func (r *Range) Start() int { return r.start }

// End returns the inclusive upper price bound.
func (r *Range) End() int { return r.end }

// Coins returns the reward for prices inside the band.
func (r *Range) Coins() int { return r.coins }

// Contains reports whether price falls inside the band.
func (r *Range) Contains(price int) bool {
	return price >= r.start && price <= r.end
}

// Table is the full set of configured price bands.
type Table struct {
	ranges []*Range
}

// NewTable builds a lookup table from the configured ranges.
func NewTable(ranges []*Range) *Table {
	out := make([]*Range, len(ranges))
	copy(out, ranges)
	return &Table{ranges: out}
}

// Ranges returns the configured bands.
func (t *Table) Ranges() []*Range {
	out := make([]*Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// CoinsFor returns the reward for the first band containing price.
// Prices outside every band cost zero coins: such orders are claimable
// for free.
func (t *Table) CoinsFor(price int) int {
	for _, r := range t.ranges {
		if r.Contains(price) {
			return r.Coins()
		}
	}
	return 0
}
