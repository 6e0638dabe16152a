package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrSetPartnerStatusCommandIsNotConstructed = errors.New(
	"SetPartnerStatusCommand must be created via NewSetPartnerStatusCommand constructor",
)

// SetPartnerStatusCommand represents an admin blocking or unblocking a
// partner.
type SetPartnerStatusCommand struct { //nolint:recvcheck //using for validation
	partnerPhone string
	blocked      bool

	guard guard.ConstructorGuard
}

// NewSetPartnerStatusCommand creates a command to change a partner's status.
func NewSetPartnerStatusCommand(partnerPhone string, blocked bool) (SetPartnerStatusCommand, error) {
	cmd := SetPartnerStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerPhone(partnerPhone); err != nil {
		return SetPartnerStatusCommand{}, err
	}

	cmd.blocked = blocked
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerStatusCommandIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (c SetPartnerStatusCommand) PartnerPhone() string { return c.partnerPhone }

// Blocked reports the desired status.
func (c SetPartnerStatusCommand) Blocked() bool { return c.blocked }

func (c *SetPartnerStatusCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}
