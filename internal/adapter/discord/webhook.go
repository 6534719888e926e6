package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

type payload struct {
	Content string `json:"content"`
}

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the notification content to Discord. Only 200 and 204 count as delivered.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return apperr.Configuration("discord webhook URL is empty", nil)
	}

	body, err := json.Marshal(payload{Content: notification.Content})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return apperr.Configuration("create discord request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return apperr.Network("perform discord request", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return apperr.Delivery(fmt.Sprintf("discord webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))), nil)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "successfully pushed problem to discord", "url", notification.Content)
	}
	return nil
}
