package scheduler

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func countingEngine(n *atomic.Int32) Engine {
	return EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		n.Add(1)
		return json.RawMessage(`{}`), nil
	})
}

func TestScheduleAt_SubmitsOnce(t *testing.T) {
	var runs atomic.Int32
	m := New(testConfig(1), countingEngine(&runs))
	defer shutdown(t, m)
	s := NewTimedScheduler(m, nil)
	defer s.Stop()

	id := s.ScheduleAt(time.Now().Add(20*time.Millisecond), json.RawMessage(`{}`), 1)
	if id == uuid.Nil {
		t.Fatal("ScheduleAt returned nil id")
	}

	waitFor(t, 2*time.Second, func() bool { return runs.Load() == 1 })
	time.Sleep(50 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("runs = %d, want exactly 1", got)
	}
}

func TestScheduleAt_PastInstantSubmitsImmediately(t *testing.T) {
	var runs atomic.Int32
	m := New(testConfig(1), countingEngine(&runs))
	defer shutdown(t, m)
	s := NewTimedScheduler(m, nil)
	defer s.Stop()

	s.ScheduleAt(time.Now().Add(-time.Minute), json.RawMessage(`{}`), 0)
	waitFor(t, 2*time.Second, func() bool { return runs.Load() == 1 })
}

func TestScheduleRecurring_SubmitsUntilCancelled(t *testing.T) {
	var runs atomic.Int32
	m := New(testConfig(1), countingEngine(&runs))
	defer shutdown(t, m)
	s := NewTimedScheduler(m, nil)
	defer s.Stop()

	id := s.ScheduleRecurring(15*time.Millisecond, json.RawMessage(`{}`), 0)
	waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 3 })

	if !s.Cancel(id) {
		t.Fatal("Cancel = false, want true")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should be false")
	}

	settled := runs.Load()
	time.Sleep(60 * time.Millisecond)
	if got := runs.Load(); got > settled+1 {
		t.Errorf("schedule kept firing after cancel: %d -> %d", settled, got)
	}
}

func TestScheduleCancel_BeforeFire(t *testing.T) {
	var runs atomic.Int32
	m := New(testConfig(1), countingEngine(&runs))
	defer shutdown(t, m)
	s := NewTimedScheduler(m, nil)
	defer s.Stop()

	id := s.ScheduleAt(time.Now().Add(100*time.Millisecond), json.RawMessage(`{}`), 0)
	if !s.Cancel(id) {
		t.Fatal("Cancel = false, want true")
	}
	time.Sleep(150 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Errorf("cancelled schedule submitted %d jobs, want 0", got)
	}
}

func TestTimedScheduler_StopRejectsNewSchedules(t *testing.T) {
	var runs atomic.Int32
	m := New(testConfig(1), countingEngine(&runs))
	defer shutdown(t, m)
	s := NewTimedScheduler(m, nil)
	s.Stop()

	if id := s.ScheduleAt(time.Now(), json.RawMessage(`{}`), 0); id != uuid.Nil {
		t.Errorf("ScheduleAt after Stop = %s, want nil id", id)
	}
	if id := s.ScheduleRecurring(time.Millisecond, json.RawMessage(`{}`), 0); id != uuid.Nil {
		t.Errorf("ScheduleRecurring after Stop = %s, want nil id", id)
	}
}
