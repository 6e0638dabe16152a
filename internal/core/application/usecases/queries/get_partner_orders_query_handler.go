package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler reads a partner's claimed orders from the
// database.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order-book queries.
// Requires a GORM database connection for query execution.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the partner's orders newest first;
// when an agent filter is set, only orders delegated to that agent.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) ([]GetPartnerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			order_id,
			status,
			customer_name,
			customer_phone,
			address,
			pincode,
			schedule_date,
			schedule_time,
			product_name,
			price,
			coins_owed,
			agent_name,
			agent_phone
		FROM orders
		WHERE partner_phone = ?
	`
	args := []any{query.PartnerPhone()}

	if query.AgentPhone() != "" {
		sql += ` AND agent_phone = ?`
		args = append(args, query.AgentPhone())
	}
	sql += ` ORDER BY created_at DESC`

	orders := make([]GetPartnerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPartnerOrdersQueryResponse

		err = rows.Scan(
			&resp.OrderID,
			&resp.Status,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Address,
			&resp.Pincode,
			&resp.ScheduleDate,
			&resp.ScheduleTime,
			&resp.ProductName,
			&resp.Price,
			&resp.CoinsOwed,
			&resp.AgentName,
			&resp.AgentPhone,
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
