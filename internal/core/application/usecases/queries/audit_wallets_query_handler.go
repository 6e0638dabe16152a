package queries

import (
	"context"

	"gorm.io/gorm"
)

// AuditWalletsQueryHandler reconciles stored balances with the transaction
// ledger in a single aggregate query.
type AuditWalletsQueryHandler struct {
	db *gorm.DB
}

// NewAuditWalletsQueryHandler creates a handler for wallet audit queries.
// Requires a GORM database connection for query execution.
func NewAuditWalletsQueryHandler(db *gorm.DB) AuditWalletsQueryHandler {
	return AuditWalletsQueryHandler{db: db}
}

// Handle executes the audit. Only partners whose balance disagrees with the
// signed ledger sum are returned.
func (h AuditWalletsQueryHandler) Handle(
	ctx context.Context,
	query AuditWalletsQuery,
) ([]AuditWalletsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	mismatches := make([]AuditWalletsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.phone,
			p.name,
			p.coins,
			COALESCE(SUM(CASE WHEN t.type = 'credited' THEN t.coins ELSE -t.coins END), 0) AS ledger_sum
		FROM partners p
		LEFT JOIN wallet_transactions t ON t.partner_phone = p.phone
		GROUP BY p.phone, p.name, p.coins
		HAVING p.coins != COALESCE(SUM(CASE WHEN t.type = 'credited' THEN t.coins ELSE -t.coins END), 0)
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AuditWalletsQueryResponse

		err = rows.Scan(
			&resp.PartnerPhone,
			&resp.PartnerName,
			&resp.Balance,
			&resp.LedgerSum,
		)
		if err != nil {
			return nil, err
		}

		mismatches = append(mismatches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}
