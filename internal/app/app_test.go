package app

import (
	"context"
	"errors"
	"testing"

	"igclone/internal/entity"
	"igclone/pkg/queue"

	"github.com/stretchr/testify/assert"
)

type recordingNotifications struct {
	events      []queue.Event
	hadDeadline bool
	err         error
}

func (r *recordingNotifications) HandleEvent(ctx context.Context, event queue.Event) error {
	_, r.hadDeadline = ctx.Deadline()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingNotifications) GetNotifications(ctx context.Context, userID uint, offset, limit int) ([]*entity.Notification, int64, error) {
	return nil, 0, nil
}

func TestEventHandler(t *testing.T) {
	notifications := &recordingNotifications{}
	handle := eventHandler(notifications)

	event := queue.Event{Type: queue.EventPostLiked, ActorID: 2, RecipientID: 1, PostID: 5}
	assert.NoError(t, handle(event))
	assert.Equal(t, []queue.Event{event}, notifications.events)
	assert.True(t, notifications.hadDeadline)

	notifications.err = errors.New("redis down")
	assert.EqualError(t, handle(event), "redis down")
}
