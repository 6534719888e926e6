package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpick/internal/domain/apperr"
	"leetpick/internal/domain/model"
)

type recordingNotifier struct {
	sent []model.Notification
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, n model.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestCompositeSendsInOrder(t *testing.T) {
	t.Parallel()

	first := &recordingNotifier{}
	second := &recordingNotifier{}
	c := NewComposite(first, nil, second)
	require.Equal(t, 2, c.Len())

	n := model.Notification{Content: "https://leetcode.com/problems/two-sum"}
	require.NoError(t, c.Send(context.Background(), n))

	assert.Equal(t, []model.Notification{n}, first.sent)
	assert.Equal(t, []model.Notification{n}, second.sent)
}

func TestCompositeStopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	failing := &recordingNotifier{err: apperr.Delivery("discord webhook returned status 500", nil)}
	after := &recordingNotifier{}

	err := NewComposite(failing, after).Send(context.Background(), model.Notification{Content: "x"})

	require.ErrorIs(t, err, apperr.ErrDelivery)
	assert.Empty(t, after.sent)
}
