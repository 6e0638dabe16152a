// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The assignment and evidence are flattened into the row; the audit log lives
// in its own append-only table keyed by the external order identifier.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       string    `gorm:"uniqueIndex"`
	CustomerName  string
	CustomerPhone string `gorm:"index"`
	CustomerEmail string
	Address       string
	Pincode       string `gorm:"index"`
	ScheduleDate  string
	ScheduleTime  string
	ProductName   string
	ProductSlug   string
	ProductImage  string
	Price         int
	Options       map[string]string `gorm:"serializer:json"`
	CoinsOwed     int
	Status        string `gorm:"index"`
	PartnerName   string
	PartnerPhone  string `gorm:"index"`
	AgentName     string
	AgentPhone    string `gorm:"index"`
	Reason        string
	FinalPrice    int
	IMEINumber    string
	IMEIImage     string
	DeviceBill    string
	IDCard        string
	DeviceImages  []string `gorm:"serializer:json"`
	Platform      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLogDTO is one append-only line of an order's audit trail.
type OrderLogDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"index"`
	Message   string
	CreatedAt time.Time
}

// TableName specifies the database table name for order log entries.
func (OrderLogDTO) TableName() string {
	return "order_logs"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	assignment := aggregate.Assignment()
	customer := aggregate.Customer()
	schedule := aggregate.Schedule()
	product := aggregate.Product()

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID(),
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerEmail: customer.Email,
		Address:       customer.Address,
		Pincode:       customer.Pincode,
		ScheduleDate:  schedule.Date,
		ScheduleTime:  schedule.Time,
		ProductName:   product.Name,
		ProductSlug:   product.Slug,
		ProductImage:  product.Image,
		Price:         product.Price,
		Options:       product.Options,
		CoinsOwed:     aggregate.CoinsOwed(),
		Status:        aggregate.Status().String(),
		PartnerName:   assignment.PartnerName,
		PartnerPhone:  assignment.PartnerPhone,
		AgentName:     assignment.AgentName,
		AgentPhone:    assignment.AgentPhone,
		Reason:        aggregate.CancellationReason(),
		Platform:      aggregate.Platform(),
	}

	if evidence := aggregate.Evidence(); evidence != nil {
		dto.FinalPrice = evidence.FinalPrice
		dto.IMEINumber = evidence.IMEINumber
		dto.IMEIImage = evidence.IMEIImage
		dto.DeviceBill = evidence.DeviceBill
		dto.IDCard = evidence.IDCard
		dto.DeviceImages = evidence.DeviceImages
	}

	return dto
}

// pendingLogDTOs converts the aggregate's unsaved log entries to rows.
func pendingLogDTOs(aggregate *order.Order) []OrderLogDTO {
	pending := aggregate.PendingLogs()
	if len(pending) == 0 {
		return nil
	}

	rows := make([]OrderLogDTO, 0, len(pending))
	for _, entry := range pending {
		rows = append(rows, OrderLogDTO{
			OrderID:   aggregate.OrderID(),
			Message:   entry.Message,
			CreatedAt: entry.Timestamp,
		})
	}
	return rows
}

// toDomain converts a database DTO with its log rows to an order domain aggregate.
func toDomain(dto OrderDTO, logRows []OrderLogDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var evidence *order.DeviceEvidence
	if dto.FinalPrice > 0 {
		evidence = &order.DeviceEvidence{
			FinalPrice:   dto.FinalPrice,
			IMEINumber:   dto.IMEINumber,
			IMEIImage:    dto.IMEIImage,
			DeviceBill:   dto.DeviceBill,
			IDCard:       dto.IDCard,
			DeviceImages: dto.DeviceImages,
		}
	}

	logs := make([]order.LogEntry, 0, len(logRows))
	for _, row := range logRows {
		logs = append(logs, order.LogEntry{
			Message:   row.Message,
			Timestamp: row.CreatedAt,
		})
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		order.Customer{
			Name:    dto.CustomerName,
			Phone:   dto.CustomerPhone,
			Email:   dto.CustomerEmail,
			Address: dto.Address,
			Pincode: dto.Pincode,
		},
		order.Schedule{Date: dto.ScheduleDate, Time: dto.ScheduleTime},
		order.Product{
			Name:    dto.ProductName,
			Slug:    dto.ProductSlug,
			Image:   dto.ProductImage,
			Price:   dto.Price,
			Options: dto.Options,
		},
		dto.CoinsOwed,
		status,
		order.Assignment{
			PartnerName:  dto.PartnerName,
			PartnerPhone: dto.PartnerPhone,
			AgentName:    dto.AgentName,
			AgentPhone:   dto.AgentPhone,
		},
		dto.Reason,
		evidence,
		dto.Platform,
		logs,
	)
}
