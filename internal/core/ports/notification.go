package ports

import (
	"context"
	"time"

	"buyback/internal/core/domain/model/kernel"
)

// Notification is an in-app push intent addressed to a partner or pickup
// agent by phone number. Intents are written to an outbox in the same
// transaction as the state change they announce and dispatched later by a
// background job; delivery is best effort and never blocks or fails the
// originating operation.
type Notification struct {
	ID        kernel.UUID
	Recipient string
	Title     string
	Body      string
	CreatedAt time.Time
}

// NotificationOutbox defines the persistence contract for queued
// notification intents.
type NotificationOutbox interface {
	// Enqueue stores a notification intent for later dispatch.
	Enqueue(ctx context.Context, notification Notification) error

	// GetUndispatched retrieves up to limit intents not yet dispatched,
	// oldest first.
	GetUndispatched(ctx context.Context, limit int) ([]Notification, error)

	// MarkDispatched marks the given intents as handled. Dispatch is
	// at-most-once: intents are marked even when the push failed.
	MarkDispatched(ctx context.Context, ids []kernel.UUID) error
}

// NotificationPusher delivers a notification to the recipient's device
// through the push gateway.
type NotificationPusher interface {
	Push(ctx context.Context, notification Notification) error
}
