package queries

import (
	"context"
	"database/sql"
	"errors"

	"buyback/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWalletStatementQueryHandler reads a partner's balance and ledger from
// the database.
type GetWalletStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletStatementQueryHandler creates a handler for wallet statement queries.
// Requires a GORM database connection for query execution.
func NewGetWalletStatementQueryHandler(db *gorm.DB) GetWalletStatementQueryHandler {
	return GetWalletStatementQueryHandler{db: db}
}

// Handle executes the query. Transactions come back newest first.
func (h GetWalletStatementQueryHandler) Handle(
	ctx context.Context,
	query GetWalletStatementQuery,
) (GetWalletStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	var resp GetWalletStatementQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT coins
		FROM partners
		WHERE phone = ?
	`, query.PartnerPhone()).Row()

	if err := row.Scan(&resp.Balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWalletStatementQueryResponse{}, errs.NewObjectNotFoundError("partnerPhone", query.PartnerPhone())
		}
		return GetWalletStatementQueryResponse{}, err
	}

	stmt := `
		SELECT
			type,
			coins,
			order_id,
			payment_id,
			message,
			created_at
		FROM wallet_transactions
		WHERE partner_phone = ?
	`
	args := []any{query.PartnerPhone()}

	if query.TypeFilter() != "" {
		stmt += ` AND type = ?`
		args = append(args, query.TypeFilter())
	}
	stmt += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return GetWalletStatementQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry WalletStatementEntry

		err = rows.Scan(
			&entry.Type,
			&entry.Coins,
			&entry.OrderID,
			&entry.PaymentID,
			&entry.Message,
			&entry.Timestamp,
		)
		if err != nil {
			return GetWalletStatementQueryResponse{}, err
		}

		resp.Transactions = append(resp.Transactions, entry)
	}

	if err = rows.Err(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	return resp, nil
}
