package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a partner's request to claim an open order.
// The claim debits the order's frozen coin reward from the partner's wallet.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	partnerPhone string
	device       string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a partner to claim an order.
func NewAcceptOrderCommand(orderID, partnerPhone, device string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerPhone(partnerPhone),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order to claim.
func (c AcceptOrderCommand) OrderID() string { return c.orderID }

// PartnerPhone returns the claiming partner's phone.
func (c AcceptOrderCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c AcceptOrderCommand) Device() string { return c.device }

func (c *AcceptOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partner phone")
	}

	c.partnerPhone = phone
	return nil
}
