package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// DeassignAgentCommandHandler clears the pickup slot of a delegated order.
type DeassignAgentCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewDeassignAgentCommandHandler creates a handler for agent de-assignment.
func NewDeassignAgentCommandHandler(uowFactory OrderPartnerUoWFactory) DeassignAgentCommandHandler {
	return DeassignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the de-assignment command and notifies the removed agent.
func (h *DeassignAgentCommandHandler) Handle(ctx context.Context, cmd DeassignAgentCommand) error {
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

	removedAgentPhone := aggregate.Assignment().AgentPhone
	if err = aggregate.DeassignAgent(p.Phone()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	notification := ports.Notification{
		ID:        kernel.NewUUID(),
		Recipient: removedAgentPhone,
		Title:     "Pickup removed",
		Body:      fmt.Sprintf("Order %s is no longer assigned to you", aggregate.OrderID()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
