package commands

import (
	"context"

	"buyback/internal/core/domain/model/order"
)

// RescheduleOrderCommandHandler replaces an order's pickup slot.
type RescheduleOrderCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewRescheduleOrderCommandHandler creates a handler for reschedule operations.
func NewRescheduleOrderCommandHandler(uowFactory OrderPartnerUoWFactory) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reschedule command.
func (h *RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) error {
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

	newSchedule := order.Schedule{Date: cmd.ScheduleDate(), Time: cmd.ScheduleTime()}
	if err = aggregate.Reschedule(newSchedule, cmd.Reason(), actor); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
