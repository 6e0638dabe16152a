package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/refund"
	"buyback/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order.
//
// When the cancelled order was claimed and its claim had debited coins, the
// handler creates exactly one pending refund record for the partner,
// whoever cancelled. Cancelling an already-cancelled order surfaces
// order.ErrAlreadyCancelled and creates nothing.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if actor.Kind == order.ActorCustomer {
		actor.Name = aggregate.Customer().Name
	}

	// Capture the assignment before cancelling: cancellation keeps the
	// partner fields for the record, but reading them up front keeps the
	// refund decision independent of that detail.
	assignment := aggregate.Assignment()

	if err = aggregate.Cancel(cmd.Reason(), actor); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if assignment.IsClaimed() && aggregate.CoinsOwed() > 0 {
		record, recordErr := refund.NewRecord(
			kernel.NewUUID(),
			aggregate.OrderID(),
			assignment.PartnerName,
			assignment.PartnerPhone,
			aggregate.CoinsOwed(),
			fmt.Sprintf("order cancelled: %s", cmd.Reason()),
		)
		if recordErr != nil {
			return recordErr
		}
		if err = uow.RefundRepository().Add(ctx, record); err != nil {
			return err
		}

		notification := ports.Notification{
			ID:        kernel.NewUUID(),
			Recipient: assignment.PartnerPhone,
			Title:     "Order cancelled",
			Body: fmt.Sprintf("Order %s was cancelled, your %d coins will be refunded",
				aggregate.OrderID(), aggregate.CoinsOwed()),
		}
		if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
