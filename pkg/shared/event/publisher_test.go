package event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingPublisherKeepsOrder(t *testing.T) {
	ctx := context.Background()
	user, post := uuid.New(), uuid.New()
	rec := &RecordingPublisher{}

	rec.Publish(ctx, NewEvent(PostCreated, user, post, "hello"))
	rec.Publish(ctx, NewEvent(PostLiked, user, post, ""))
	rec.Publish(ctx, NewEvent(PostDeleted, user, post, ""))

	assert.Equal(t, []string{PostCreated, PostLiked, PostDeleted}, rec.Types())
	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "hello", events[0].Message)
	assert.Equal(t, post, events[0].ResourceID)
	assert.False(t, events[0].OccurredAt.IsZero())

	// the returned slice is a copy
	events[0].EventType = "changed"
	assert.Equal(t, PostCreated, rec.Events()[0].EventType)
}

func TestNATSPublisherWithoutConnection(t *testing.T) {
	ctx := context.Background()
	p := &NATSPublisher{}

	assert.NotPanics(t, func() {
		p.Publish(ctx, NewEvent(ProfileDeleted, uuid.New(), uuid.New(), ""))
	})
	assert.Error(t, p.Ping(ctx))
	assert.NotPanics(t, p.Close)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), NewEvent(PostCreated, uuid.New(), uuid.New(), ""))
		p.Close()
	})
}
