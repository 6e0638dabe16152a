package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrAdjustWalletCommandIsNotConstructed = errors.New(
	"AdjustWalletCommand must be created via NewAdjustWalletCommand constructor",
)

// AdjustWalletCommand represents an administrative wallet correction. Coins
// may be positive or negative; the message lands in the ledger as the reason.
type AdjustWalletCommand struct { //nolint:recvcheck //using for validation
	partnerPhone string
	coins        int
	message      string

	guard guard.ConstructorGuard
}

// NewAdjustWalletCommand creates a command for a signed wallet correction.
func NewAdjustWalletCommand(partnerPhone string, coins int, message string) (AdjustWalletCommand, error) {
	cmd := AdjustWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerPhone(partnerPhone),
		cmd.setCoins(coins),
		cmd.setMessage(message),
	); err != nil {
		return AdjustWalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustWalletCommand) Validate() error {
	return c.guard.Validate(ErrAdjustWalletCommandIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (c AdjustWalletCommand) PartnerPhone() string { return c.partnerPhone }

// Coins returns the signed adjustment amount.
func (c AdjustWalletCommand) Coins() int { return c.coins }

// Message returns the adjustment reason recorded in the ledger.
func (c AdjustWalletCommand) Message() string { return c.message }

func (c *AdjustWalletCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}

func (c *AdjustWalletCommand) setCoins(coins int) error {
	if coins == 0 {
		return errs.NewValueIsInvalidError("coins")
	}

	c.coins = coins
	return nil
}

func (c *AdjustWalletCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}
