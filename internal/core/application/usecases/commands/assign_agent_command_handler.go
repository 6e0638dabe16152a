package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// AssignAgentCommandHandler delegates a claimed order to a pickup agent.
// Only the partner holding the claim may delegate, the agent must belong to
// that partner, and the order's pickup slot must be empty.
type AssignAgentCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewAssignAgentCommandHandler creates a handler for agent delegation.
func NewAssignAgentCommandHandler(uowFactory OrderPartnerUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delegation command and queues a notification to the agent.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	agent, err := p.AgentByPhone(cmd.AgentPhone())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignAgent(p.Phone(), agent.Name(), agent.Phone()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	notification := ports.Notification{
		ID:        kernel.NewUUID(),
		Recipient: agent.Phone(),
		Title:     "New pickup assigned",
		Body:      fmt.Sprintf("Order %s was assigned to you by %s", aggregate.OrderID(), p.Name()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
