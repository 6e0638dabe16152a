// Package outboxrepo persists notification intents written in the same
// transaction as the state change they announce. A background job drains
// the outbox and pushes the intents at most once.
package outboxrepo

import (
	"context"
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
	"buyback/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for queued notification
// intents. A NULL dispatched_at marks the intent as not yet handled.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Recipient    string
	Title        string
	Body         string
	CreatedAt    time.Time
	DispatchedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification intents.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotificationOutbox implements NotificationOutbox using GORM.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Enqueue stores a notification intent for later dispatch.
func (o *GormNotificationOutbox) Enqueue(ctx context.Context, notification ports.Notification) error {
	if err := notification.ID.Validate(); err != nil {
		return err
	}
	if notification.Recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	dto := NotificationDTO{
		ID:        notification.ID.Bytes(),
		Recipient: notification.Recipient,
		Title:     notification.Title,
		Body:      notification.Body,
		CreatedAt: time.Now().UTC(),
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

// GetUndispatched retrieves up to limit intents not yet dispatched, oldest first.
func (o *GormNotificationOutbox) GetUndispatched(ctx context.Context, limit int) ([]ports.Notification, error) {
	var dtos []NotificationDTO
	err := o.db.WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]ports.Notification, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		notifications = append(notifications, ports.Notification{
			ID:        id,
			Recipient: dto.Recipient,
			Title:     dto.Title,
			Body:      dto.Body,
			CreatedAt: dto.CreatedAt,
		})
	}

	return notifications, nil
}

// MarkDispatched marks the given intents as handled.
func (o *GormNotificationOutbox) MarkDispatched(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	now := time.Now().UTC()
	return o.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id IN ?", raw).
		Update("dispatched_at", &now).Error
}
