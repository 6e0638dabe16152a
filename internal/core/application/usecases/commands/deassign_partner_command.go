package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrDeassignPartnerCommandIsNotConstructed = errors.New(
	"DeassignPartnerCommand must be created via NewDeassignPartnerCommand constructor",
)

// DeassignPartnerCommand represents an administrator's request to take a
// claimed order away from its partner and return it to the open pool.
// When the claim was paid for, a pending refund record is created for the
// debited coins.
type DeassignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID string
	reason  string

	guard guard.ConstructorGuard
}

// NewDeassignPartnerCommand creates a command to revert a claimed order to "new".
func NewDeassignPartnerCommand(orderID, reason string) (DeassignPartnerCommand, error) {
	cmd := DeassignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeassignPartnerCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeassignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeassignPartnerCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (c DeassignPartnerCommand) OrderID() string { return c.orderID }

// Reason returns the administrator's stated reason.
func (c DeassignPartnerCommand) Reason() string { return c.reason }

func (c *DeassignPartnerCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
