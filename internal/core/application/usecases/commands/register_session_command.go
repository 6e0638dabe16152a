package commands

import (
	"errors"
	"fmt"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrRegisterSessionCommandIsNotConstructed = errors.New(
	"RegisterSessionCommand must be created via NewRegisterSessionCommand constructor",
)

// RegisterSessionCommand binds a partner's or pickup agent's live session
// to the device they just logged in from. Any earlier session on another
// device is superseded.
type RegisterSessionCommand struct { //nolint:recvcheck //using for validation
	role   ActorRole
	phone  string
	device string

	guard guard.ConstructorGuard
}

// NewRegisterSessionCommand creates a command to register a login session.
func NewRegisterSessionCommand(role ActorRole, phone, device string) (RegisterSessionCommand, error) {
	cmd := RegisterSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setPhone(phone),
		cmd.setDevice(device),
	); err != nil {
		return RegisterSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSessionCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSessionCommandIsNotConstructed)
}

// Role returns the kind of party logging in.
func (c RegisterSessionCommand) Role() ActorRole { return c.role }

// Phone returns the party's phone.
func (c RegisterSessionCommand) Phone() string { return c.phone }

// Device returns the device the session binds to.
func (c RegisterSessionCommand) Device() string { return c.device }

func (c *RegisterSessionCommand) setRole(role ActorRole) error {
	if role != RolePartner && role != RolePickupAgent {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q does not carry a device-bound session", string(role)))
	}

	c.role = role
	return nil
}

func (c *RegisterSessionCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *RegisterSessionCommand) setDevice(device string) error {
	if device == "" {
		return errs.NewValueIsRequiredError("device")
	}

	c.device = device
	return nil
}
