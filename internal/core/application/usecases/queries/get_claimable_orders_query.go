// Package queries contains read-only operations that bypass the domain
// model and read the database directly. Implements the query side of the
// CQRS architecture; responses are plain read models shaped for the API.
package queries

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
	"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
)

// GetClaimableOrdersQuery retrieves unclaimed new orders within the
// calling partner's serviced pincodes. This is the feed a partner browses
// before accepting an order; the pincodes come from the partner's stored
// profile, never from the caller, so no partner can browse another
// region's orders.
//
// Example:
//
//	query, err := NewGetClaimableOrdersQuery("9876543210")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetClaimableOrdersQuery struct {
	partnerPhone string

	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a query for the claimable-order feed.
func NewGetClaimableOrdersQuery(partnerPhone string) (GetClaimableOrdersQuery, error) {
	if partnerPhone == "" {
		return GetClaimableOrdersQuery{}, errs.NewValueIsRequiredError("partnerPhone")
	}

	return GetClaimableOrdersQuery{
		partnerPhone: partnerPhone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// PartnerPhone returns the phone of the partner whose feed is requested.
func (q GetClaimableOrdersQuery) PartnerPhone() string { return q.partnerPhone }

// GetClaimableOrdersQueryResponse is one entry in the claimable-order feed.
// Customer contact details are withheld until the order is claimed.
type GetClaimableOrdersQueryResponse struct {
	OrderID      string
	Pincode      string
	ScheduleDate string
	ScheduleTime string
	ProductName  string
	Price        int
	CoinsOwed    int
}
