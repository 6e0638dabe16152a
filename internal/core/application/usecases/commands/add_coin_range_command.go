package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAddCoinRangeCommandIsNotConstructed = errors.New(
	"AddCoinRangeCommand must be created via NewAddCoinRangeCommand constructor",
)

// AddCoinRangeCommand represents adding a price band to the coin table.
// Orders quoted within [start, end] freeze the band's coin amount.
type AddCoinRangeCommand struct { //nolint:recvcheck //using for validation
	start int
	end   int
	coins int

	guard guard.ConstructorGuard
}

// NewAddCoinRangeCommand creates a command to add a coin price band.
func NewAddCoinRangeCommand(start, end, coins int) (AddCoinRangeCommand, error) {
	cmd := AddCoinRangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBounds(start, end),
		cmd.setCoins(coins),
	); err != nil {
		return AddCoinRangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCoinRangeCommand) Validate() error {
	return c.guard.Validate(ErrAddCoinRangeCommandIsNotConstructed)
}

// Start returns the inclusive lower price bound.
func (c AddCoinRangeCommand) Start() int { return c.start }

// End returns the inclusive upper price bound.
func (c AddCoinRangeCommand) End() int { return c.end }

// Coins returns the coin amount charged for orders in the band.
func (c AddCoinRangeCommand) Coins() int { return c.coins }

func (c *AddCoinRangeCommand) setBounds(start, end int) error {
	if start < 0 {
		return errs.NewValueIsInvalidError("start")
	}
	if end < start {
		return errs.NewValueIsInvalidError("end")
	}

	c.start = start
	c.end = end
	return nil
}

func (c *AddCoinRangeCommand) setCoins(coins int) error {
	if coins <= 0 {
		return errs.NewValueIsInvalidError("coins")
	}

	c.coins = coins
	return nil
}
