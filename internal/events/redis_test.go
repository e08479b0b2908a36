package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu       sync.Mutex
	messages [][]byte
}

func (r *recorder) Broadcast(message []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) received() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.messages...)
}

func TestNew(t *testing.T) {
	event, err := New(QuestionDeleted, map[string]int{"id": 4})
	require.NoError(t, err)

	assert.Equal(t, QuestionDeleted, event.Type)
	assert.JSONEq(t, `{"id":4}`, string(event.Payload))
	assert.WithinDuration(t, time.Now(), event.OccurredAt, time.Minute)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Publish(context.Background(), Event{Type: QuestionCreated}))
}

func TestRedisBroker_PublishRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	broker := NewRedisBroker(client, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	sink := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- broker.Relay(ctx, sink) }()

	event, err := New(QuestionCreated, map[string]any{"id": 1, "question": "2+2?"})
	require.NoError(t, err)

	// Publishing before the relay has subscribed is lost, so keep publishing
	// until the first copy arrives.
	require.Eventually(t, func() bool {
		assert.NoError(t, broker.Publish(context.Background(), event))
		return len(sink.received()) > 0
	}, 2*time.Second, 20*time.Millisecond)

	var got Event
	require.NoError(t, json.Unmarshal(sink.received()[0], &got))
	assert.Equal(t, QuestionCreated, got.Type)
	assert.JSONEq(t, string(event.Payload), string(got.Payload))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
