package commands

import (
	"context"
)

// RegisterSessionCommandHandler records which device a partner or pickup
// agent is logged in from. The stored device is the single session
// authority: commands later compare their token's device against it.
type RegisterSessionCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterSessionCommandHandler creates a handler for session registration.
func NewRegisterSessionCommandHandler(uowFactory PartnerUoWFactory) RegisterSessionCommandHandler {
	return RegisterSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session registration command.
func (h *RegisterSessionCommandHandler) Handle(ctx context.Context, cmd RegisterSessionCommand) error {
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

	if cmd.Role() == RolePickupAgent {
		aggregate, err := uow.PartnerRepository().GetByAgentPhone(ctx, cmd.Phone())
		if err != nil {
			return err
		}

		agent, err := aggregate.AgentByPhone(cmd.Phone())
		if err != nil {
			return err
		}

		if err = agent.RegisterSession(cmd.Device()); err != nil {
			return err
		}

		if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	aggregate, err := uow.PartnerRepository().GetByPhone(ctx, cmd.Phone())
	if err != nil {
		return err
	}

	if err = aggregate.RegisterSession(cmd.Device()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
