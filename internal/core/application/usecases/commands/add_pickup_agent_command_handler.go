package commands

import (
	"context"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/partner"
)

// AddPickupAgentCommandHandler enrols a pickup agent on a partner's crew.
type AddPickupAgentCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewAddPickupAgentCommandHandler creates a handler for agent enrolment.
func NewAddPickupAgentCommandHandler(uowFactory PartnerUoWFactory) AddPickupAgentCommandHandler {
	return AddPickupAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enrolment command.
func (h *AddPickupAgentCommandHandler) Handle(ctx context.Context, cmd AddPickupAgentCommand) error {
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

	agent, err := partner.NewPickupAgent(kernel.NewUUID(), cmd.AgentName(), cmd.AgentPhone())
	if err != nil {
		return err
	}

	if err = aggregate.AddAgent(agent); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
