package commands

import (
	"context"

	"buyback/internal/core/domain/model/coinrange"
	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// AddCoinRangeCommandHandler adds a price band to the coin table.
type AddCoinRangeCommandHandler struct {
	coinRangeRepository ports.CoinRangeRepository
}

// NewAddCoinRangeCommandHandler creates a handler for coin-table updates.
func NewAddCoinRangeCommandHandler(coinRangeRepository ports.CoinRangeRepository) AddCoinRangeCommandHandler {
	return AddCoinRangeCommandHandler{
		coinRangeRepository: coinRangeRepository,
	}
}

// Handle processes the command.
func (h *AddCoinRangeCommandHandler) Handle(ctx context.Context, cmd AddCoinRangeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	band, err := coinrange.NewRange(kernel.NewUUID(), cmd.Start(), cmd.End(), cmd.Coins())
	if err != nil {
		return err
	}

	return h.coinRangeRepository.Add(ctx, band)
}
