package commands

import (
	"context"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler onboards a new partner with an empty wallet.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner onboarding.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command and returns the new partner's id.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := partner.NewPartner(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Pincodes())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PartnerRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
