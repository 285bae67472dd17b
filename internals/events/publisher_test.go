package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisPublisherPublishesJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	pub, err := Dial(ctx, mr.Addr(), "", 0, "intake")
	require.NoError(t, err)
	defer pub.Close()

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer sub.Close()
	ps := sub.Subscribe(ctx, "intake")
	defer ps.Close()
	_, err = ps.Receive(ctx) // subscription confirmation
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, pub.Publish(ctx, Event{
		Type:       TypeCompleted,
		Flow:       "info_session",
		RecordID:   id,
		Status:     "completed",
		OccurredAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
	}))

	msg, err := ps.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, TypeCompleted, got.Type)
	assert.Equal(t, id, got.RecordID)
	assert.Equal(t, "completed", got.Status)
}

func TestDialFailsWithoutServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Dial(context.Background(), addr, "", 0, "intake")
	assert.Error(t, err)
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("down")
}
func (f *failingPublisher) Close() error { return nil }

func TestPublishSwallowsErrorsAndStampsTime(t *testing.T) {
	f := &failingPublisher{}
	Publish(context.Background(), f, zap.NewNop(), Event{Type: TypeStarted, RecordID: uuid.New()})
	assert.Equal(t, 1, f.calls)

	Publish(context.Background(), nil, zap.NewNop(), Event{Type: TypeStarted})
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
