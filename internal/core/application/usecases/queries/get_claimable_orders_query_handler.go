package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClaimableOrdersQueryHandler reads the claimable-order feed from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for the claimable feed.
// Requires a GORM database connection for query execution.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query. The feed is scoped to the partner's stored
// serviced pincodes and returns new, unclaimed orders oldest first, so
// long-waiting pickups surface at the top.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]GetClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pincodes, err := h.partnerPincodes(ctx, query.PartnerPhone())
	if err != nil {
		return nil, err
	}

	orders := make([]GetClaimableOrdersQueryResponse, 0)
	if len(pincodes) == 0 {
		return orders, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			pincode,
			schedule_date,
			schedule_time,
			product_name,
			price,
			coins_owed
		FROM orders
		WHERE status = ?
		  AND partner_phone = ''
		  AND pincode IN ?
		ORDER BY created_at
	`, order.New.String(), pincodes).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetClaimableOrdersQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.Pincode,
			&resp.ScheduleDate,
			&resp.ScheduleTime,
			&resp.ProductName,
			&resp.Price,
			&resp.CoinsOwed,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// partnerPincodes loads the partner's serviced pincodes from its stored
// profile. The column holds a JSON array.
func (h GetClaimableOrdersQueryHandler) partnerPincodes(ctx context.Context, phone string) ([]string, error) {
	var raw string

	row := h.db.WithContext(ctx).Raw(`
		SELECT pincodes FROM partners WHERE phone = ?
	`, phone).Row()

	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("partner", phone)
		}
		return nil, err
	}

	var pincodes []string
	if err := json.Unmarshal([]byte(raw), &pincodes); err != nil {
		return nil, err
	}

	return pincodes, nil
}
