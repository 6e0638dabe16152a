package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAddPickupAgentCommandIsNotConstructed = errors.New(
	"AddPickupAgentCommand must be created via NewAddPickupAgentCommand constructor",
)

// AddPickupAgentCommand represents a partner enrolling a pickup agent on
// their crew.
type AddPickupAgentCommand struct { //nolint:recvcheck //using for validation
	partnerPhone string
	device       string
	agentName    string
	agentPhone   string

	guard guard.ConstructorGuard
}

// NewAddPickupAgentCommand creates a command to enrol a pickup agent.
func NewAddPickupAgentCommand(partnerPhone, device, agentName, agentPhone string) (AddPickupAgentCommand, error) {
	cmd := AddPickupAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerPhone(partnerPhone),
		cmd.setAgentName(agentName),
		cmd.setAgentPhone(agentPhone),
	); err != nil {
		return AddPickupAgentCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPickupAgentCommand) Validate() error {
	return c.guard.Validate(ErrAddPickupAgentCommandIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (c AddPickupAgentCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c AddPickupAgentCommand) Device() string { return c.device }

// AgentName returns the new agent's display name.
func (c AddPickupAgentCommand) AgentName() string { return c.agentName }

// AgentPhone returns the new agent's phone.
func (c AddPickupAgentCommand) AgentPhone() string { return c.agentPhone }

func (c *AddPickupAgentCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}

func (c *AddPickupAgentCommand) setAgentName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("agentName")
	}

	c.agentName = name
	return nil
}

func (c *AddPickupAgentCommand) setAgentPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("agentPhone")
	}

	c.agentPhone = phone
	return nil
}
