// Package console prints notifications when no webhook is configured.
package console

import (
	"context"
	"fmt"
	"io"

	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

// Notifier writes the notification content as a single line.
type Notifier struct {
	out    io.Writer
	logger ports.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier writing to out.
func NewNotifier(out io.Writer, logger ports.Logger) *Notifier {
	return &Notifier{out: out, logger: logger}
}

// Send prints the content.
func (n *Notifier) Send(ctx context.Context, notification model.Notification) error {
	if n.logger != nil {
		n.logger.Info(ctx, "webhook url is not configured", "url", notification.Content)
	}
	if n.out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(n.out, notification.Content); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
