package commands

import (
	"context"

	"buyback/internal/core/domain/services"
)

// AssignPartnerCommandHandler forces an order onto a partner on an
// administrator's behalf. The claim protocol is unchanged: the order must
// still be unclaimed and the partner's wallet must still cover the coin
// reward, so a forced assignment can lose the same races a voluntary claim
// can. Only the session check is skipped, because the partner's device is
// not involved.
type AssignPartnerCommandHandler struct {
	uowFactory   OrderPartnerUoWFactory
	claimService services.ClaimService
}

// NewAssignPartnerCommandHandler creates a handler for forced assignments.
func NewAssignPartnerCommandHandler(uowFactory OrderPartnerUoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory:   uowFactory,
		claimService: services.NewClaimService(),
	}
}

// Handle processes the forced assignment command.
func (h *AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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
