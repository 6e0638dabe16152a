package commands

import (
	"context"
)

// AdjustWalletCommandHandler applies an administrative correction to a
// partner's wallet. Only administrators reach this handler, so there is no
// session to authorize.
type AdjustWalletCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewAdjustWalletCommandHandler creates a handler for wallet adjustments.
func NewAdjustWalletCommandHandler(uowFactory PartnerUoWFactory) AdjustWalletCommandHandler {
	return AdjustWalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment command.
func (h *AdjustWalletCommandHandler) Handle(ctx context.Context, cmd AdjustWalletCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.PartnerRepository().GetByPhone(ctx, cmd.PartnerPhone())
	if err != nil {
		return err
	}

	if err = aggregate.Adjust(cmd.Coins(), cmd.Message()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
