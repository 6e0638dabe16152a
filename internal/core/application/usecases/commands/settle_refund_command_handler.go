package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

// SettleRefundCommandHandler flips a pending refund record to refunded and
// credits the partner's wallet in the same transaction. The repository
// update is conditional on the stored record still being pending, so two
// concurrent settlements cannot credit the wallet twice.
type SettleRefundCommandHandler struct {
	uowFactory RefundUoWFactory
}

// NewSettleRefundCommandHandler creates a handler for refund settlement.
func NewSettleRefundCommandHandler(uowFactory RefundUoWFactory) SettleRefundCommandHandler {
	return SettleRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h *SettleRefundCommandHandler) Handle(ctx context.Context, cmd SettleRefundCommand) error {
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

	record, err := uow.RefundRepository().Get(ctx, cmd.RefundID())
	if err != nil {
		return err
	}

	if err = record.Settle(); err != nil {
		return err
	}

	if err = uow.RefundRepository().Update(ctx, record); err != nil {
		return err
	}

	aggregate, err := uow.PartnerRepository().GetByPhone(ctx, record.PartnerPhone())
	if err != nil {
		return err
	}

	if err = aggregate.CreditRefund(record.Coins(), record.OrderID()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	notification := ports.Notification{
		ID:        kernel.NewUUID(),
		Recipient: record.PartnerPhone(),
		Title:     "Coins refunded",
		Body: fmt.Sprintf("%d coins for order %s are back in your wallet",
			record.Coins(), record.OrderID()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, notification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
