package commands

import (
	"context"
	"log/slog"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/ports"
)

const dispatchBatchSize = 50

// DispatchNotificationsCommandHandler drains the notification outbox. Each
// notification is pushed at most once: push failures are logged and the
// notification is still marked dispatched rather than retried forever.
type DispatchNotificationsCommandHandler struct {
	outbox ports.NotificationOutbox
	pusher ports.NotificationPusher
	logger *slog.Logger
}

// NewDispatchNotificationsCommandHandler creates a handler that drains the outbox.
func NewDispatchNotificationsCommandHandler(
	outbox ports.NotificationOutbox,
	pusher ports.NotificationPusher,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		outbox: outbox,
		pusher: pusher,
		logger: logger,
	}
}

// Handle pushes one batch of undispatched notifications.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context) error {
	notifications, err := h.outbox.GetUndispatched(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}

	dispatched := make([]kernel.UUID, 0, len(notifications))
	for _, notification := range notifications {
		if pushErr := h.pusher.Push(ctx, notification); pushErr != nil {
			h.logger.Warn("push failed",
				slog.String("notificationID", notification.ID.String()),
				slog.String("recipient", notification.Recipient),
				slog.Any("error", pushErr),
			)
		}
		dispatched = append(dispatched, notification.ID)
	}

	return h.outbox.MarkDispatched(ctx, dispatched)
}
