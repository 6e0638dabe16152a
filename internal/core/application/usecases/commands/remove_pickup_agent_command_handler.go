package commands

import (
	"context"
)

// RemovePickupAgentCommandHandler removes a pickup agent from a partner's
// crew. Orders already assigned to the agent keep their assignment; only
// future assignments are affected.
type RemovePickupAgentCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRemovePickupAgentCommandHandler creates a handler for agent removal.
func NewRemovePickupAgentCommandHandler(uowFactory PartnerUoWFactory) RemovePickupAgentCommandHandler {
	return RemovePickupAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemovePickupAgentCommandHandler) Handle(ctx context.Context, cmd RemovePickupAgentCommand) error {
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

	if err = aggregate.RemoveAgent(cmd.AgentPhone()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
