package queries

import (
	"errors"
	"fmt"
	"time"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrGetWalletStatementQueryIsNotConstructed = errors.New(
	"GetWalletStatementQuery must be created via NewGetWalletStatementQuery constructor",
)

// GetWalletStatementQuery retrieves a partner's coin balance together with
// its transaction history, optionally filtered to credits or debits only.
type GetWalletStatementQuery struct {
	partnerPhone string
	typeFilter   string

	guard guard.ConstructorGuard
}

// NewGetWalletStatementQuery creates a query for a partner's wallet
// statement. typeFilter is "credited", "debited" or empty for both.
func NewGetWalletStatementQuery(partnerPhone, typeFilter string) (GetWalletStatementQuery, error) {
	if partnerPhone == "" {
		return GetWalletStatementQuery{}, errs.NewValueIsRequiredError("partnerPhone")
	}
	switch typeFilter {
	case "", "credited", "debited":
	default:
		return GetWalletStatementQuery{}, errs.NewValueIsInvalidErrorWithCause("typeFilter",
			fmt.Errorf("%q is not a transaction type", typeFilter))
	}

	return GetWalletStatementQuery{
		partnerPhone: partnerPhone,
		typeFilter:   typeFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletStatementQueryIsNotConstructed)
}

// PartnerPhone returns the partner's phone.
func (q GetWalletStatementQuery) PartnerPhone() string { return q.partnerPhone }

// TypeFilter returns the optional transaction type filter.
func (q GetWalletStatementQuery) TypeFilter() string { return q.typeFilter }

// WalletStatementEntry is one ledger line in a wallet statement.
type WalletStatementEntry struct {
	Type      string
	Coins     int
	OrderID   string
	PaymentID string
	Message   string
	Timestamp time.Time
}

// GetWalletStatementQueryResponse is a partner's balance with its ledger.
type GetWalletStatementQueryResponse struct {
	Balance      int
	Transactions []WalletStatementEntry
}
