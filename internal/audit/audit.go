// Package audit defines the structured event sink the scheduler reports to.
// Sinks are fire-and-forget: implementations must swallow their own failures,
// and the scheduler never blocks on them.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the scheduler lifecycle events.
type EventType string

const (
	EventJobSubmitted EventType = "job_submitted"
	EventJobStarted   EventType = "job_started"
	EventJobRetried   EventType = "job_retried"
	EventJobCompleted EventType = "job_completed"
	EventJobFailed    EventType = "job_failed"
	EventJobCancelled EventType = "job_cancelled"
	EventQueuePaused  EventType = "queue_paused"
	EventQueueResumed EventType = "queue_resumed"
)

// Event is one scheduler lifecycle record.
type Event struct {
	Type       EventType
	JobID      uuid.UUID // uuid.Nil for queue-level events
	Priority   int
	RetryCount int
	Detail     string          // error text, pause reason, etc
	Payload    json.RawMessage // set on job_submitted only
	Result     json.RawMessage // set on job_completed only
	At         time.Time
}

// Sink consumes scheduler events.
type Sink interface {
	Record(ctx context.Context, ev Event)
}

// SlogSink writes events to a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Record(_ context.Context, ev Event) {
	attrs := []any{
		"event", string(ev.Type),
		"at", ev.At,
	}
	if ev.JobID != uuid.Nil {
		attrs = append(attrs, "job_id", ev.JobID.String(), "priority", ev.Priority, "retry_count", ev.RetryCount)
	}
	if ev.Detail != "" {
		attrs = append(attrs, "detail", ev.Detail)
	}
	s.logger.Info("scheduler.event", attrs...)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(context.Context, Event) {}

// Multi fans one event out to several sinks.
type Multi []Sink

func (m Multi) Record(ctx context.Context, ev Event) {
	for _, s := range m {
		s.Record(ctx, ev)
	}
}
