package audit

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingSink struct{ n int }

func (c *countingSink) Record(context.Context, Event) { c.n++ }

func TestMultiFansOut(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	m := Multi{a, b, NopSink{}}
	m.Record(context.Background(), Event{Type: EventJobSubmitted, JobID: uuid.New(), At: time.Now()})
	m.Record(context.Background(), Event{Type: EventQueuePaused, At: time.Now()})
	if a.n != 2 || b.n != 2 {
		t.Errorf("fan-out counts = %d, %d; want 2, 2", a.n, b.n)
	}
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSlogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	id := uuid.New()
	sink.Record(context.Background(), Event{
		Type:       EventJobFailed,
		JobID:      id,
		Priority:   1,
		RetryCount: 3,
		Detail:     "TIMEOUT: render service status 408",
		At:         time.Now(),
	})

	out := buf.String()
	for _, want := range []string{"scheduler.event", "job_failed", id.String(), "TIMEOUT"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}

	// queue-level events carry no job attributes
	buf.Reset()
	sink.Record(context.Background(), Event{Type: EventQueueResumed, At: time.Now()})
	if strings.Contains(buf.String(), "job_id") {
		t.Errorf("queue event carries job_id: %s", buf.String())
	}
}
