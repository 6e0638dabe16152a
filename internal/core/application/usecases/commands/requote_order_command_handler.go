package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// RequoteOrderCommandHandler replaces an order's quoted price and options.
// The order log records the actor together with both prices, and the
// customer is told the new quote.
type RequoteOrderCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewRequoteOrderCommandHandler creates a handler for requote operations.
func NewRequoteOrderCommandHandler(uowFactory OrderPartnerUoWFactory) RequoteOrderCommandHandler {
	return RequoteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the requote command.
func (h *RequoteOrderCommandHandler) Handle(ctx context.Context, cmd RequoteOrderCommand) error {
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

	previousPrice := aggregate.Product().Price

	if err = aggregate.Requote(cmd.Price(), cmd.Options(), actor); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	notification := ports.Notification{
		ID:        kernel.NewUUID(),
		Recipient: aggregate.Customer().Phone,
		Title:     "Quote updated",
		Body: fmt.Sprintf("The quote for order %s changed from %d to %d after inspection",
			aggregate.OrderID(), previousPrice, cmd.Price()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
