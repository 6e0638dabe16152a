package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/ports"
)

// orderSequenceName is the counter every external order identifier is
// allocated from.
const orderSequenceName = "orders"

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation allocates the next external order identifier from the sequence,
// looks up the coin reward for the quoted price in the range table and
// freezes it on the order. A price outside every configured band freezes a
// zero reward rather than failing the order.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	sequences     ports.SequenceGenerator
	coinRanges    ports.CoinRangeRepository
	orderIDPrefix string
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequences ports.SequenceGenerator,
	coinRanges ports.CoinRangeRepository,
	orderIDPrefix string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		sequences:     sequences,
		coinRanges:    coinRanges,
		orderIDPrefix: orderIDPrefix,
	}
}

// Handle processes the order creation command and returns the external
// identifier assigned to the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	table, err := h.coinRanges.GetTable(ctx)
	if err != nil {
		return "", err
	}

	seq, err := h.sequences.Next(ctx, orderSequenceName)
	if err != nil {
		return "", err
	}
	orderID := fmt.Sprintf("%s%d", h.orderIDPrefix, seq)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		orderID,
		order.Customer{
			Name:    cmd.CustomerName(),
			Phone:   cmd.CustomerPhone(),
			Email:   cmd.CustomerEmail(),
			Address: cmd.Address(),
		},
		order.Schedule{Date: cmd.ScheduleDate(), Time: cmd.ScheduleTime()},
		order.Product{
			Name:    cmd.ProductName(),
			Slug:    cmd.ProductSlug(),
			Image:   cmd.ProductImage(),
			Price:   cmd.Price(),
			Options: cmd.Options(),
		},
		table.CoinsFor(cmd.Price()),
		cmd.Platform(),
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return orderID, nil
}
