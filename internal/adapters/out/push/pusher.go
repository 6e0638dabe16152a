// Package push delivers notification intents to the in-app push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"buyback/internal/core/ports"
	"buyback/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// pushRequest is the gateway's wire format for one notification.
type pushRequest struct {
	Recipient string `json:"recipient"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// HTTPNotificationPusher implements NotificationPusher against the push
// gateway's HTTP API. Delivery is best effort; the caller decides what a
// failed push means.
type HTTPNotificationPusher struct {
	gatewayURL string
	client     *http.Client
}

// NewHTTPNotificationPusher creates a pusher for the given gateway base URL.
func NewHTTPNotificationPusher(gatewayURL string) (*HTTPNotificationPusher, error) {
	if gatewayURL == "" {
		return nil, errs.NewValueIsRequiredError("gatewayURL")
	}

	return &HTTPNotificationPusher{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Push sends one notification to the gateway.
func (p *HTTPNotificationPusher) Push(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(pushRequest{
		Recipient: notification.Recipient,
		Title:     notification.Title,
		Body:      notification.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to encode push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.gatewayURL+"/api/push", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push gateway returned unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
