package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// CompleteOrderCommandHandler marks an order as completed with the collected
// device evidence. Completing an already-completed order surfaces
// order.ErrAlreadyCompleted.
type CompleteOrderCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completion operations.
func NewCompleteOrderCommandHandler(uowFactory OrderPartnerUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	actor, err := resolveActor(ctx, uow.PartnerRepository(), cmd.Role(), cmd.Phone(), cmd.Device())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(cmd.Evidence(), actor); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if assignment := aggregate.Assignment(); assignment.IsClaimed() {
		notification := ports.Notification{
			ID:        kernel.NewUUID(),
			Recipient: assignment.PartnerPhone,
			Title:     "Order completed",
			Body: fmt.Sprintf("Order %s was completed at a final price of %d",
				aggregate.OrderID(), cmd.Evidence().FinalPrice),
		}
		if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
