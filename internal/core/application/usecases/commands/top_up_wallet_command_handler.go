package commands

import (
	"context"
)

// TopUpWalletCommandHandler credits purchased coins to a partner's wallet.
type TopUpWalletCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewTopUpWalletCommandHandler creates a handler for wallet top-ups.
func NewTopUpWalletCommandHandler(uowFactory PartnerUoWFactory) TopUpWalletCommandHandler {
	return TopUpWalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command.
func (h *TopUpWalletCommandHandler) Handle(ctx context.Context, cmd TopUpWalletCommand) error {
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

	if err = aggregate.AuthorizeSession(cmd.Device()); err != nil {
		return err
	}

	if err = aggregate.CreditTopUp(cmd.Coins(), cmd.PaymentID()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
