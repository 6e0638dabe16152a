package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrRequoteOrderCommandIsNotConstructed = errors.New(
	"RequoteOrderCommand must be created via NewRequoteOrderCommand constructor",
)

// RequoteOrderCommand represents a request by the assigned partner or pickup
// agent to replace the quoted price after inspecting the device. The coin
// reward frozen at creation is unaffected.
type RequoteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	price   int
	options map[string]string
	role    ActorRole
	phone   string
	device  string

	guard guard.ConstructorGuard
}

// NewRequoteOrderCommand creates a command to replace an order's quote.
func NewRequoteOrderCommand(
	orderID string,
	price int,
	options map[string]string,
	role ActorRole,
	phone, device string,
) (RequoteOrderCommand, error) {
	cmd := RequoteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrice(price),
		cmd.setRole(role),
	); err != nil {
		return RequoteOrderCommand{}, err
	}

	cmd.options = options
	cmd.phone = phone
	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrRequoteOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c RequoteOrderCommand) OrderID() string { return c.orderID }

// Price returns the new quoted amount.
func (c RequoteOrderCommand) Price() int { return c.price }

// Options returns the revised questionnaire answers.
func (c RequoteOrderCommand) Options() map[string]string { return c.options }

// Role returns the acting party's role.
func (c RequoteOrderCommand) Role() ActorRole { return c.role }

// Phone returns the acting party's phone.
func (c RequoteOrderCommand) Phone() string { return c.phone }

// Device returns the device identifier carried by the session token.
func (c RequoteOrderCommand) Device() string { return c.device }

func (c *RequoteOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RequoteOrderCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *RequoteOrderCommand) setRole(role ActorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
