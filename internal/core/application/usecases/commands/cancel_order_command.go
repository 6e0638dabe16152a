package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Customers may
// cancel their own orders, the assigned partner or pickup agent theirs, and
// administrators any order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	reason  string
	role    ActorRole
	phone   string
	device  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, reason string, role ActorRole, phone, device string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.reason = reason
	cmd.phone = phone
	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c CancelOrderCommand) OrderID() string { return c.orderID }

// Reason returns the stated cancellation reason.
func (c CancelOrderCommand) Reason() string { return c.reason }

// Role returns the acting party's role.
func (c CancelOrderCommand) Role() ActorRole { return c.role }

// Phone returns the acting party's phone.
func (c CancelOrderCommand) Phone() string { return c.phone }

// Device returns the device identifier carried by the session token.
func (c CancelOrderCommand) Device() string { return c.device }

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setRole(role ActorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
