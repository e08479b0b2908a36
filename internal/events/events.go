// Package events carries question bank change notifications to the live feed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	QuestionCreated = "question.created"
	QuestionDeleted = "question.deleted"
)

// Event is a change notification as delivered to feed subscribers
type Event struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// New builds an event with payload encoded as JSON
func New(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return Event{
		Type:       eventType,
		Payload:    data,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Broadcaster receives encoded events for local fan-out
type Broadcaster interface {
	Broadcast(message []byte)
}

// Discard is a Publisher that drops every event
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, Event) error { return nil }
