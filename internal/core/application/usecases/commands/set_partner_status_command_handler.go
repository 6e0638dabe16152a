package commands

import (
	"context"
)

// SetPartnerStatusCommandHandler blocks or unblocks a partner. A blocked
// partner keeps their wallet and agents but fails every authorization
// check until unblocked.
type SetPartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewSetPartnerStatusCommandHandler creates a handler for status changes.
func NewSetPartnerStatusCommandHandler(uowFactory PartnerUoWFactory) SetPartnerStatusCommandHandler {
	return SetPartnerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *SetPartnerStatusCommandHandler) Handle(ctx context.Context, cmd SetPartnerStatusCommand) error {
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

	if cmd.Blocked() {
		aggregate.Block()
	} else {
		aggregate.Unblock()
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
