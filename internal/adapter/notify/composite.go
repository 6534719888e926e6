// Package notify fans a notification out to several notifiers.
package notify

import (
	"context"
	"fmt"

	"leetpick/internal/domain/model"
	"leetpick/internal/domain/ports"
)

// Composite sends to each notifier in order and stops at the first failure.
type Composite struct {
	notifiers []ports.Notifier
}

var _ ports.Notifier = (*Composite)(nil)

// NewComposite constructs a Composite, skipping nil notifiers.
func NewComposite(notifiers ...ports.Notifier) *Composite {
	active := make([]ports.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &Composite{notifiers: active}
}

// Len returns the number of active notifiers.
func (c *Composite) Len() int {
	return len(c.notifiers)
}

// Send delivers the notification sequentially.
func (c *Composite) Send(ctx context.Context, notification model.Notification) error {
	for i, n := range c.notifiers {
		if err := n.Send(ctx, notification); err != nil {
			return fmt.Errorf("notifier %d: %w", i, err)
		}
	}
	return nil
}
