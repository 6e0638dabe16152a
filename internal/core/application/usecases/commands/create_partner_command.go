package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand represents onboarding a new buy-back partner.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	email    string
	pincodes []string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to onboard a partner.
func NewCreatePartnerCommand(name, phone, email string, pincodes []string) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setPincodes(pincodes),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	cmd.email = email
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string { return c.name }

// Phone returns the partner's phone.
func (c CreatePartnerCommand) Phone() string { return c.phone }

// Email returns the partner's email.
func (c CreatePartnerCommand) Email() string { return c.email }

// Pincodes returns the pincodes the partner serves.
func (c CreatePartnerCommand) Pincodes() []string { return c.pincodes }

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setPincodes(pincodes []string) error {
	if len(pincodes) == 0 {
		return errs.NewValueIsRequiredError("pincodes")
	}

	c.pincodes = pincodes
	return nil
}
