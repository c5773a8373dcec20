package tracking

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event is any payload that can be pushed to the analytics sink
type Event interface {
	EventName() string
}

// EventSink receives analytics events in order. Implementations must be
// safe for concurrent use.
type EventSink interface {
	Push(ctx context.Context, event Event) error
}

// MemorySink buffers events in memory. It backs the session-scoped
// data layer exposed over HTTP and doubles as a recorder in tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Push appends the event to the buffer
func (s *MemorySink) Push(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a snapshot of all buffered events in push order
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset drops all buffered events
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// LogSink writes each event to the structured log instead of buffering
// it, for deployments without an analytics consumer
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that logs events at info level
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Push logs the event
func (s *LogSink) Push(_ context.Context, event Event) error {
	s.logger.Info("analytics event", zap.String("event", event.EventName()), zap.Any("payload", event))
	return nil
}
