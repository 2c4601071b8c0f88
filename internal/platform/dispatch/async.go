package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectsphere/internal/person/models"
)

// ErrClosed is returned by Dispatch after Close.
var ErrClosed = errors.New("dispatcher is closed")

// ErrBufferFull is returned when the inbox cannot take another event. The
// event is dropped; at-most-once delivery allows it.
var ErrBufferFull = errors.New("dispatch buffer is full")

// Async decouples the request path from the broker round-trip. Dispatch
// enqueues without blocking; a single worker goroutine forwards events to the
// wrapped dispatcher in order. Close stops intake, drains the inbox and waits
// for the worker.
type Async struct {
	inner  Dispatcher
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	inbox  chan models.Event
	done   chan struct{}
}

// NewAsync starts the worker. buffer bounds the inbox; zero or negative
// falls back to 1024.
func NewAsync(inner Dispatcher, buffer int, logger *slog.Logger) *Async {
	if buffer <= 0 {
		buffer = 1024
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &Async{
		inner:  inner,
		logger: logger,
		inbox:  make(chan models.Event, buffer),
		done:   make(chan struct{}),
	}
	go a.work()
	return a
}

func (a *Async) work() {
	defer close(a.done)
	for event := range a.inbox {
		// The request that produced the event may be long gone; forwarding
		// uses a fresh context.
		if err := a.inner.Dispatch(context.Background(), event); err != nil {
			a.logger.Warn("async event dispatch failed",
				"event", event.EventName(), "event_id", event.EventID(), "error", err)
		}
	}
}

func (a *Async) Dispatch(_ context.Context, event models.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	select {
	case a.inbox <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close stops intake and blocks until every queued event has been forwarded.
func (a *Async) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	close(a.inbox)
	a.mu.Unlock()
	<-a.done
}
