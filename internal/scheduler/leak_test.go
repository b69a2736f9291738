package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/calebmartins/exportq/internal/entity"
)

// TestLeakCheck_ManagerLifecycle verifies that creating a manager, running
// jobs through it and shutting it down does not leak goroutines.
func TestLeakCheck_ManagerLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var wg sync.WaitGroup
	wg.Add(10)
	m := New(testConfig(3), okEngine())
	m.OnComplete(func(entity.ExportJob) { wg.Done() })

	for i := 0; i < 10; i++ {
		if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), i%3); err != nil {
			t.Fatalf("AddJob: %v", err)
		}
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

// TestLeakCheck_TimedScheduler verifies schedule goroutines exit on Stop.
func TestLeakCheck_TimedScheduler(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	m := New(testConfig(1), okEngine())
	s := NewTimedScheduler(m, nil)

	s.ScheduleAt(time.Now().Add(time.Hour), json.RawMessage(`{}`), 0)
	s.ScheduleRecurring(time.Hour, json.RawMessage(`{}`), 0)
	s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
