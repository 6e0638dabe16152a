package queries

import (
	"errors"
	"fmt"
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrGetRefundsQueryIsNotConstructed = errors.New(
	"GetRefundsQuery must be created via NewGetRefundsQuery constructor",
)

// GetRefundsQuery retrieves refund records, optionally filtered by status
// or partner. Administrators use the pending view as their settlement
// worklist.
type GetRefundsQuery struct {
	status       string
	partnerPhone string

	guard guard.ConstructorGuard
}

// NewGetRefundsQuery creates a query over refund records. status is
// "pending", "refunded" or empty for all; partnerPhone may be empty.
func NewGetRefundsQuery(status, partnerPhone string) (GetRefundsQuery, error) {
	switch status {
	case "", "pending", "refunded":
	default:
		return GetRefundsQuery{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a refund status", status))
	}

	return GetRefundsQuery{
		status:       status,
		partnerPhone: partnerPhone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRefundsQuery) Validate() error {
	return q.guard.Validate(ErrGetRefundsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetRefundsQuery) Status() string { return q.status }

// PartnerPhone returns the optional partner filter.
func (q GetRefundsQuery) PartnerPhone() string { return q.partnerPhone }

// GetRefundsQueryResponse is one refund record in the listing.
type GetRefundsQueryResponse struct {
	ID           kernel.UUID
	OrderID      string
	PartnerName  string
	PartnerPhone string
	Coins        int
	Reason       string
	Status       string
	CreatedAt    time.Time
	SettledAt    *time.Time
}
