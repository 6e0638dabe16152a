package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrRemovePickupAgentCommandIsNotConstructed = errors.New(
	"RemovePickupAgentCommand must be created via NewRemovePickupAgentCommand constructor",
)

// RemovePickupAgentCommand represents a partner removing a pickup agent
// from their crew.
type RemovePickupAgentCommand struct { //nolint:recvcheck //using for validation
	partnerPhone string
	device       string
	agentPhone   string

	guard guard.ConstructorGuard
}

// NewRemovePickupAgentCommand creates a command to remove a pickup agent.
func NewRemovePickupAgentCommand(partnerPhone, device, agentPhone string) (RemovePickupAgentCommand, error) {
	cmd := RemovePickupAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerPhone(partnerPhone),
		cmd.setAgentPhone(agentPhone),
	); err != nil {
		return RemovePickupAgentCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePickupAgentCommand) Validate() error {
	return c.guard.Validate(ErrRemovePickupAgentCommandIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (c RemovePickupAgentCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c RemovePickupAgentCommand) Device() string { return c.device }

// AgentPhone returns the phone of the agent being removed.
func (c RemovePickupAgentCommand) AgentPhone() string { return c.agentPhone }

func (c *RemovePickupAgentCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}

func (c *RemovePickupAgentCommand) setAgentPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("agentPhone")
	}

	c.agentPhone = phone
	return nil
}
