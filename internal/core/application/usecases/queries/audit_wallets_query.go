package queries

import (
	"errors"

	"buyback/internal/pkg/guard"
)

var ErrAuditWalletsQueryIsNotConstructed = errors.New(
	"AuditWalletsQuery must be created via NewAuditWalletsQuery constructor",
)

// AuditWalletsQuery cross-checks every partner's stored balance against the
// signed sum of its transaction ledger. A mismatch means a balance was
// changed outside the guarded update path and needs investigation.
type AuditWalletsQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditWalletsQuery creates a wallet audit query.
func NewAuditWalletsQuery() AuditWalletsQuery {
	return AuditWalletsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AuditWalletsQuery) Validate() error {
	return q.guard.Validate(ErrAuditWalletsQueryIsNotConstructed)
}

// AuditWalletsQueryResponse is one partner whose balance disagrees with its
// ledger. An empty result set means every wallet reconciles.
type AuditWalletsQueryResponse struct {
	PartnerPhone string
	PartnerName  string
	Balance      int
	LedgerSum    int
}
