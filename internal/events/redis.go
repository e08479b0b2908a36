package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the Redis pub/sub channel events travel on
const DefaultChannel = "trivia:events"

// RedisBroker publishes events on a Redis channel and relays the channel
// into a local Broadcaster, so every instance sees every change.
type RedisBroker struct {
	redis   *redis.Client
	channel string
	log     *slog.Logger
}

// NewRedisBroker creates a broker on the given channel
func NewRedisBroker(client *redis.Client, channel string, log *slog.Logger) *RedisBroker {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBroker{
		redis:   client,
		channel: channel,
		log:     log,
	}
}

// Publish sends the event to every subscriber of the channel
func (b *RedisBroker) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redis.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Relay forwards channel messages to sink until ctx is cancelled
func (b *RedisBroker) Relay(ctx context.Context, sink Broadcaster) error {
	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	// Wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}
	b.log.Info("relaying question events", slog.String("channel", b.channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			sink.Broadcast([]byte(msg.Payload))
		}
	}
}
