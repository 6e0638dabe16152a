package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrTopUpWalletCommandIsNotConstructed = errors.New(
	"TopUpWalletCommand must be created via NewTopUpWalletCommand constructor",
)

// TopUpWalletCommand represents a partner purchasing coins. The payment
// itself is settled by the payment gateway before this command runs; the
// paymentID ties the ledger entry back to that settlement.
type TopUpWalletCommand struct { //nolint:recvcheck //using for validation
	partnerPhone string
	device       string
	coins        int
	paymentID    string

	guard guard.ConstructorGuard
}

// NewTopUpWalletCommand creates a command to credit purchased coins.
func NewTopUpWalletCommand(partnerPhone, device string, coins int, paymentID string) (TopUpWalletCommand, error) {
	cmd := TopUpWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerPhone(partnerPhone),
		cmd.setCoins(coins),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return TopUpWalletCommand{}, err
	}

	cmd.device = device
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TopUpWalletCommand) Validate() error {
	return c.guard.Validate(ErrTopUpWalletCommandIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (c TopUpWalletCommand) PartnerPhone() string { return c.partnerPhone }

// Device returns the device identifier carried by the session token.
func (c TopUpWalletCommand) Device() string { return c.device }

// Coins returns the purchased coin amount.
func (c TopUpWalletCommand) Coins() int { return c.coins }

// PaymentID returns the gateway payment reference.
func (c TopUpWalletCommand) PaymentID() string { return c.paymentID }

func (c *TopUpWalletCommand) setPartnerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("partnerPhone")
	}

	c.partnerPhone = phone
	return nil
}

func (c *TopUpWalletCommand) setCoins(coins int) error {
	if coins <= 0 {
		return errs.NewValueIsInvalidError("coins")
	}

	c.coins = coins
	return nil
}

func (c *TopUpWalletCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	c.paymentID = paymentID
	return nil
}
