package commands

import (
	"context"

	"buyback/internal/core/domain/services"
)

// AcceptOrderCommandHandler executes the claim protocol for a partner.
//
// The wallet debit and the order assignment are persisted in one
// transaction. Both repositories guard their updates against concurrent
// changes: the order update only matches the unclaimed snapshot and the
// wallet debit only matches a balance that still covers it, so two partners
// racing for the same order resolve to exactly one winner and one debit.
type AcceptOrderCommandHandler struct {
	uowFactory   OrderPartnerUoWFactory
	claimService services.ClaimService
}

// NewAcceptOrderCommandHandler creates a handler for order claim operations.
func NewAcceptOrderCommandHandler(uowFactory OrderPartnerUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:   uowFactory,
		claimService: services.NewClaimService(),
	}
}

// Handle processes the claim command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	p, err := uow.PartnerRepository().GetByPhone(ctx, cmd.PartnerPhone())
	if err != nil {
		return err
	}
	if err = p.AuthorizeSession(cmd.Device()); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.claimService.Claim(aggregate, p); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.PartnerRepository().Update(ctx, p); err != nil {
		return err
	}

	if err = enqueueClaimIntents(ctx, uow, aggregate, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
