package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrDeassignAgentCommandIsNotConstructed = errors.New(
	"DeassignAgentCommand must be created via NewDeassignAgentCommand constructor",
)

// DeassignAgentCommand represents a partner's request to take a delegated
// order back from their pickup agent. The order stays claimed by the partner.
type DeassignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	partnerPhone string
	device       string

	guard guard.ConstructorGuard
}

// NewDeassignAgentCommand creates a command to clear an order's pickup slot.
func NewDeassignAgentCommand(orderID, partnerPhone, device string) (DeassignAgentCommand, error) {
	cmd := DeassignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerPhone(partnerPhone),
	); err != nil {
		return DeassignAgentCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeassignAgentCommand) Validate() error {
	return c.guard.Validate(ErrDeassignAgentCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c DeassignAgentCommand) OrderID() string { return c.orderID }

// PartnerPhone returns the partner's phone.
func (c DeassignAgentCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c DeassignAgentCommand) Device() string { return c.device }

func (c *DeassignAgentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *DeassignAgentCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partner phone")
	}

	c.partnerPhone = phone
	return nil
}
