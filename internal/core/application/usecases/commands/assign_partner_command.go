package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents an administrator forcing an order onto a
// specific partner instead of waiting for the partner to claim it.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	partnerPhone string

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command for a forced assignment.
func NewAssignPartnerCommand(orderID, partnerPhone string) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerPhone(partnerPhone),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the external order identifier.
func (c AssignPartnerCommand) OrderID() string { return c.orderID }

// PartnerPhone returns the phone of the partner receiving the order.
func (c AssignPartnerCommand) PartnerPhone() string { return c.partnerPhone }

func (c *AssignPartnerCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}
