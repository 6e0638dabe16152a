package queries

import (
	"context"

	"buyback/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRefundsQueryHandler reads refund records from the database.
type GetRefundsQueryHandler struct {
	db *gorm.DB
}

// NewGetRefundsQueryHandler creates a handler for refund listing queries.
// Requires a GORM database connection for query execution.
func NewGetRefundsQueryHandler(db *gorm.DB) GetRefundsQueryHandler {
	return GetRefundsQueryHandler{db: db}
}

// Handle executes the query. Records come back oldest first so the
// settlement worklist is processed in arrival order.
func (h GetRefundsQueryHandler) Handle(
	ctx context.Context,
	query GetRefundsQuery,
) ([]GetRefundsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			order_id,
			partner_name,
			partner_phone,
			coins,
			reason,
			status,
			created_at,
			settled_at
		FROM refunds
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if query.Status() != "" {
		stmt += ` AND status = ?`
		args = append(args, query.Status())
	}
	if query.PartnerPhone() != "" {
		stmt += ` AND partner_phone = ?`
		args = append(args, query.PartnerPhone())
	}
	stmt += ` ORDER BY created_at`

	refunds := make([]GetRefundsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRefundsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.PartnerName,
			&resp.PartnerPhone,
			&resp.Coins,
			&resp.Reason,
			&resp.Status,
			&resp.CreatedAt,
			&resp.SettledAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID

		refunds = append(refunds, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return refunds, nil
}
