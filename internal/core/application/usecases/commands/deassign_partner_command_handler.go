package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/refund"
	"buyback/internal/core/ports"
)

// DeassignPartnerCommandHandler reverts a claimed order back to the open
// pool. The partner's wallet is not touched directly: the coins debited for
// the claim are owed back through a pending refund record that an
// administrator settles separately.
type DeassignPartnerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeassignPartnerCommandHandler creates a handler for partner de-assignment.
func NewDeassignPartnerCommandHandler(uowFactory UoWFactory) DeassignPartnerCommandHandler {
	return DeassignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the de-assignment command. Exactly one refund record is
// created whenever the claim being undone had debited coins.
func (h *DeassignPartnerCommandHandler) Handle(ctx context.Context, cmd DeassignPartnerCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous, err := aggregate.Deassign(order.Actor{Kind: order.ActorAdmin})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.CoinsOwed() > 0 {
		record, recordErr := refund.NewRecord(
			kernel.NewUUID(),
			aggregate.OrderID(),
			previous.PartnerName,
			previous.PartnerPhone,
			aggregate.CoinsOwed(),
			cmd.Reason(),
		)
		if recordErr != nil {
			return recordErr
		}
		if err = uow.RefundRepository().Add(ctx, record); err != nil {
			return err
		}
	}

	notification := ports.Notification{
		ID:        kernel.NewUUID(),
		Recipient: previous.PartnerPhone,
		Title:     "Order de-assigned",
		Body: fmt.Sprintf("Order %s was taken back by the marketplace, your coins will be refunded",
			aggregate.OrderID()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
