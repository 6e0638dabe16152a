package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/core/ports"
)

// enqueueClaimIntents queues the notification fan-out for a successful
// claim: the customer learns who is coming, the claiming partner gets a
// debit receipt, and every other partner serving the order's pincode has
// the order revoked from their feed. All intents ride the claim's
// transaction, so a rolled-back claim sends nothing.
func enqueueClaimIntents(
	ctx context.Context,
	uow OrderPartnerUoW,
	aggregate *order.Order,
	claimer *partner.Partner,
) error {
	candidates, err := uow.PartnerRepository().GetByPincode(ctx, aggregate.Customer().Pincode)
	if err != nil {
		return err
	}

	intents := []ports.Notification{
		{
			ID:        kernel.NewUUID(),
			Recipient: aggregate.Customer().Phone,
			Title:     "Pickup scheduled",
			Body: fmt.Sprintf("%s will pick up your %s on %s between %s",
				claimer.Name(), aggregate.Product().Name,
				aggregate.Schedule().Date, aggregate.Schedule().Time),
		},
		{
			ID:        kernel.NewUUID(),
			Recipient: claimer.Phone(),
			Title:     "Order claimed",
			Body: fmt.Sprintf("Order %s is yours, %d coins were debited from your wallet",
				aggregate.OrderID(), aggregate.CoinsOwed()),
		},
	}

	for _, candidate := range candidates {
		if candidate.Phone() == claimer.Phone() {
			continue
		}
		intents = append(intents, ports.Notification{
			ID:        kernel.NewUUID(),
			Recipient: candidate.Phone(),
			Title:     "Order no longer available",
			Body:      fmt.Sprintf("Order %s was claimed by another partner", aggregate.OrderID()),
		})
	}

	outbox := uow.NotificationOutbox()
	for _, intent := range intents {
		if err = outbox.Enqueue(ctx, intent); err != nil {
			return err
		}
	}

	return nil
}
