package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"realty-agent/domain"
)

const (
	DefaultTelemetryBuffer = 256
	sinkTimeout            = 5 * time.Second
)

// Tracker accepts fire-and-forget events. Implementations must not block.
type Tracker interface {
	Track(ctx context.Context, name domain.EventName, data map[string]any)
}

type NopTracker struct{}

func (NopTracker) Track(context.Context, domain.EventName, map[string]any) {}

// EventSink is where dispatched events end up.
type EventSink interface {
	Record(ctx context.Context, event domain.Event) error
}

// Dispatcher hands events to a sink on a single background worker. When the
// buffer is full new events are dropped rather than waiting.
type Dispatcher struct {
	sink   EventSink
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	closed  bool
	events  chan domain.Event
	done    chan struct{}
	dropped atomic.Int64
}

func NewDispatcher(sink EventSink, buffer int, logger *zap.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultTelemetryBuffer
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		now:    time.Now,
		events: make(chan domain.Event, buffer),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Track(ctx context.Context, name domain.EventName, data map[string]any) {
	d.Emit(domain.Event{
		ID:        uuid.NewString(),
		Name:      name,
		Data:      data,
		Timestamp: d.now(),
		SessionID: SessionIDFromContext(ctx),
	})
}

// Emit queues event and reports whether it was accepted.
func (d *Dispatcher) Emit(event domain.Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return false
	}
	select {
	case d.events <- event:
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// Dropped is the number of events discarded because the buffer was full or
// the dispatcher was closed.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

func (d *Dispatcher) run() {
	defer close(d.done)
	d.logger.Debug("telemetry dispatcher started")

	for event := range d.events {
		ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
		if err := d.sink.Record(ctx, event); err != nil {
			d.logger.Warn("failed to record event",
				zap.String("event", string(event.Name)),
				zap.String("id", event.ID),
				zap.Error(err))
		}
		cancel()
	}
}

// Close stops accepting events and waits for queued ones to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.events)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		if n := d.Dropped(); n > 0 {
			d.logger.Info("telemetry dispatcher stopped", zap.Int64("dropped", n))
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
