// Package dispatch carries domain events out of the process.
//
// The service hands events to a Dispatcher one at a time, fire-and-forget.
// Logging always works; Kafka is optional and enabled by configuration; Async
// decouples the request path from the broker round-trip with a bounded inbox
// drained on Close.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"connectsphere/internal/person/models"
)

// Dispatcher publishes one domain event. At-most-once: implementations never
// retry on their own.
type Dispatcher interface {
	Dispatch(ctx context.Context, event models.Event) error
}

// Envelope is the wire shape of a published event. The payload holds the
// event's own fields; identity and timing live on the envelope so consumers
// can route without decoding the payload.
type Envelope struct {
	EventID    uuid.UUID       `json:"event_id"`
	EventName  string          `json:"event_name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Encode wraps an event in its envelope and serializes it.
func Encode(event models.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload %s: %w", event.EventName(), err)
	}
	data, err := json.Marshal(Envelope{
		EventID:    event.EventID(),
		EventName:  event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal event envelope %s: %w", event.EventName(), err)
	}
	return data, nil
}
