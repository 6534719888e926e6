// Package slack delivers notifications through a Slack incoming webhook.
package slack

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	slackapi "github.com/slack-go/slack"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

// Webhook posts notifications to a Slack incoming webhook.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a Slack webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the notification content as the message text.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return apperr.Configuration("slack webhook URL is empty", nil)
	}

	msg := &slackapi.WebhookMessage{Text: notification.Content}
	if err := slackapi.PostWebhookCustomHTTPContext(ctx, w.webhookURL, w.httpClient, msg); err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return apperr.Network("post slack webhook", err)
		}
		return apperr.Delivery("slack webhook rejected message", err)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "successfully pushed problem to slack", "url", notification.Content)
	}
	return nil
}
