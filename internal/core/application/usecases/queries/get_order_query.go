package queries

import (
	"errors"
	"time"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full audit log.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its external identifier.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the external identifier of the order.
func (q GetOrderQuery) OrderID() string { return q.orderID }

// OrderLogEntry is one line of the order's audit trail.
type OrderLogEntry struct {
	Message   string
	Timestamp time.Time
}

// GetOrderQueryResponse is the full read model of a single order.
type GetOrderQueryResponse struct {
	OrderID       string
	Status        string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	Pincode       string
	ScheduleDate  string
	ScheduleTime  string
	ProductName   string
	ProductSlug   string
	ProductImage  string
	Price         int
	CoinsOwed     int
	PartnerName   string
	PartnerPhone  string
	AgentName     string
	AgentPhone    string
	Reason        string
	Platform      string
	Logs          []OrderLogEntry
}
