package commands

import (
	"errors"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/pkg/guard"
)

var ErrSettleRefundCommandIsNotConstructed = errors.New(
	"SettleRefundCommand must be created via NewSettleRefundCommand constructor",
)

// SettleRefundCommand represents a request to pay out a pending refund.
type SettleRefundCommand struct { //nolint:recvcheck //using for validation
	refundID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettleRefundCommand creates a command to settle a refund record.
func NewSettleRefundCommand(refundID kernel.UUID) (SettleRefundCommand, error) {
	cmd := SettleRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRefundID(refundID); err != nil {
		return SettleRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleRefundCommand) Validate() error {
	return c.guard.Validate(ErrSettleRefundCommandIsNotConstructed)
}

// RefundID returns the identifier of the refund record.
func (c SettleRefundCommand) RefundID() kernel.UUID { return c.refundID }

func (c *SettleRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}

	c.refundID = refundID
	return nil
}
