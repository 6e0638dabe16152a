package commands

import (
	"errors"

	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to mark a pickup as done. The
// evidence captured at the doorstep travels with the command.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	evidence order.DeviceEvidence
	role     ActorRole
	phone    string
	device   string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(
	orderID string,
	evidence order.DeviceEvidence,
	role ActorRole,
	phone, device string,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvidence(evidence),
		cmd.setRole(role),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	cmd.phone = phone
	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c CompleteOrderCommand) OrderID() string { return c.orderID }

// Evidence returns the device evidence collected at pickup.
func (c CompleteOrderCommand) Evidence() order.DeviceEvidence { return c.evidence }

// Role returns the acting party's role.
func (c CompleteOrderCommand) Role() ActorRole { return c.role }

// Phone returns the acting party's phone.
func (c CompleteOrderCommand) Phone() string { return c.phone }

// Device returns the device identifier carried by the session token.
func (c CompleteOrderCommand) Device() string { return c.device }

func (c *CompleteOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setEvidence(evidence order.DeviceEvidence) error {
	if evidence.FinalPrice <= 0 {
		return errs.NewValueIsInvalidError("evidence final price")
	}

	c.evidence = evidence
	return nil
}

func (c *CompleteOrderCommand) setRole(role ActorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
