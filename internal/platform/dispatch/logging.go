package dispatch

import (
	"context"
	"log/slog"

	"connectsphere/internal/person/models"
)

// Logging writes every event to the structured log. It is the default
// dispatcher when no broker is configured and doubles as a local audit trail
// in front of Kafka.
type Logging struct {
	logger *slog.Logger
	next   Dispatcher
}

// NewLogging builds a logging dispatcher. next is optional; when set, the
// event is forwarded after logging.
func NewLogging(logger *slog.Logger, next Dispatcher) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{logger: logger, next: next}
}

func (l *Logging) Dispatch(ctx context.Context, event models.Event) error {
	l.logger.InfoContext(ctx, "domain event",
		"event", event.EventName(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
	)
	if l.next == nil {
		return nil
	}
	return l.next.Dispatch(ctx, event)
}
