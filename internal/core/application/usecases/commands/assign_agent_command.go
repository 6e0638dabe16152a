package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a partner's request to delegate a claimed
// order to one of their pickup agents.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	partnerPhone string
	device       string
	agentPhone   string

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to delegate an order to a pickup agent.
func NewAssignAgentCommand(orderID, partnerPhone, device, agentPhone string) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerPhone(partnerPhone),
		cmd.setAgentPhone(agentPhone),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order to delegate.
func (c AssignAgentCommand) OrderID() string { return c.orderID }

// PartnerPhone returns the delegating partner's phone.
func (c AssignAgentCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c AssignAgentCommand) Device() string { return c.device }

// AgentPhone returns the pickup agent's phone.
func (c AssignAgentCommand) AgentPhone() string { return c.agentPhone }

func (c *AssignAgentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignAgentCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partner phone")
	}

	c.partnerPhone = phone
	return nil
}

func (c *AssignAgentCommand) setAgentPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("agent phone")
	}

	c.agentPhone = phone
	return nil
}
