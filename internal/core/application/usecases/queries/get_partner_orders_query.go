package queries

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves the orders currently assigned to a partner,
// optionally filtered to those delegated to one of its pickup agents.
type GetPartnerOrdersQuery struct {
	partnerPhone string
	agentPhone   string

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a partner's order book.
// agentPhone may be empty to list all of the partner's orders.
func NewGetPartnerOrdersQuery(partnerPhone, agentPhone string) (GetPartnerOrdersQuery, error) {
	if partnerPhone == "" {
		return GetPartnerOrdersQuery{}, errs.NewValueIsRequiredError("partnerPhone")
	}

	return GetPartnerOrdersQuery{
		partnerPhone: partnerPhone,
		agentPhone:   agentPhone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (q GetPartnerOrdersQuery) PartnerPhone() string { return q.partnerPhone }

// AgentPhone returns the optional agent filter.
func (q GetPartnerOrdersQuery) AgentPhone() string { return q.agentPhone }

// GetPartnerOrdersQueryResponse is one order in a partner's book. Customer
// contact details are included because the order is already claimed.
type GetPartnerOrdersQueryResponse struct {
	OrderID       string
	Status        string
	CustomerName  string
	CustomerPhone string
	Address       string
	Pincode       string
	ScheduleDate  string
	ScheduleTime  string
	ProductName   string
	Price         int
	CoinsOwed     int
	AgentName     string
	AgentPhone    string
}
