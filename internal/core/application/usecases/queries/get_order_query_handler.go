package queries

import (
	"context"
	"database/sql"
	"errors"

	"buyback/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and its audit log from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Log entries come back most recent first,
// matching the order they are shown in the order timeline.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			customer_name,
			customer_phone,
			customer_email,
			address,
			pincode,
			schedule_date,
			schedule_time,
			product_name,
			product_slug,
			product_image,
			price,
			coins_owed,
			partner_name,
			partner_phone,
			agent_name,
			agent_phone,
			reason,
			platform
		FROM orders
		WHERE order_id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.OrderID,
		&resp.Status,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.Address,
		&resp.Pincode,
		&resp.ScheduleDate,
		&resp.ScheduleTime,
		&resp.ProductName,
		&resp.ProductSlug,
		&resp.ProductImage,
		&resp.Price,
		&resp.CoinsOwed,
		&resp.PartnerName,
		&resp.PartnerPhone,
		&resp.AgentName,
		&resp.AgentPhone,
		&resp.Reason,
		&resp.Platform,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			message,
			created_at
		FROM order_logs
		WHERE order_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrderLogEntry

		if err = rows.Scan(&entry.Message, &entry.Timestamp); err != nil {
			return GetOrderQueryResponse{}, err
		}

		resp.Logs = append(resp.Logs, entry)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
