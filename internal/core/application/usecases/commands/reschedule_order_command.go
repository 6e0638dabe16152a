package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrRescheduleOrderCommandIsNotConstructed = errors.New(
	"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
)

// RescheduleOrderCommand represents a request to replace an order's pickup
// slot. The order log records the before and after schedule with the reason.
type RescheduleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	scheduleDate string
	scheduleTime string
	reason       string
	role         ActorRole
	phone        string
	device       string

	guard guard.ConstructorGuard
}

// NewRescheduleOrderCommand creates a command to replace an order's pickup slot.
func NewRescheduleOrderCommand(
	orderID, scheduleDate, scheduleTime, reason string,
	role ActorRole,
	phone, device string,
) (RescheduleOrderCommand, error) {
	cmd := RescheduleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setScheduleDate(scheduleDate),
		cmd.setRole(role),
	); err != nil {
		return RescheduleOrderCommand{}, err
	}

	cmd.scheduleTime = scheduleTime
	cmd.reason = reason
	cmd.phone = phone
	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c RescheduleOrderCommand) OrderID() string { return c.orderID }

// ScheduleDate returns the new pickup date.
func (c RescheduleOrderCommand) ScheduleDate() string { return c.scheduleDate }

// ScheduleTime returns the new pickup time slot.
func (c RescheduleOrderCommand) ScheduleTime() string { return c.scheduleTime }

// Reason returns the stated rescheduling reason.
func (c RescheduleOrderCommand) Reason() string { return c.reason }

// Role returns the acting party's role.
func (c RescheduleOrderCommand) Role() ActorRole { return c.role }

// Phone returns the acting party's phone.
func (c RescheduleOrderCommand) Phone() string { return c.phone }

// Device returns the device identifier carried by the session token.
func (c RescheduleOrderCommand) Device() string { return c.device }

func (c *RescheduleOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RescheduleOrderCommand) setScheduleDate(date string) error {
	if date == "" {
		return errs.NewValueIsRequiredError("schedule date")
	}

	c.scheduleDate = date
	return nil
}

func (c *RescheduleOrderCommand) setRole(role ActorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
