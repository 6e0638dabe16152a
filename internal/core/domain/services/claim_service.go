package services

import (
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
)

// ClaimService is a domain service that executes the claim protocol:
// a partner accepts an order and pays for it from the coin wallet in one
// atomic domain operation.
//
// Business rules:
//   - the order must be unclaimed and in status "new"
//   - the partner must be active and the wallet must cover CoinsOwed
//   - the debit and the assignment succeed or fail together; a failed debit
//     leaves the order unclaimed and a failed assignment never debits
//
// The service only mutates the in-memory aggregates. Persisting both under
// one transaction, and detecting a concurrent claim, is the responsibility
// of the command layer and the repositories.
type ClaimService struct{}

// NewClaimService creates a new ClaimService instance.
func NewClaimService() ClaimService {
	return ClaimService{}
}

// Claim assigns the order to the partner and debits the wallet by the
// order's frozen coin reward.
//
// Returns:
//   - order.ErrAlreadyAssigned when another partner holds the order
//   - partner.ErrInsufficientBalance when the wallet cannot cover the reward
//   - partner.ErrPartnerBlocked when the partner is blocked
func (s ClaimService) Claim(o *order.Order, p *partner.Partner) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if o.Assignment().IsClaimed() {
		return order.ErrAlreadyAssigned
	}

	// Debit before assigning: a partner who cannot pay must never hold the
	// order, while a failed assignment below means the order state changed
	// and the whole unit of work is rolled back anyway.
	if o.CoinsOwed() > 0 {
		if err := p.DebitForClaim(o.CoinsOwed(), o.OrderID()); err != nil {
			return err
		}
	} else if p.Status() == partner.Blocked {
		return partner.ErrPartnerBlocked
	}

	return o.Accept(p.Name(), p.Phone())
}
