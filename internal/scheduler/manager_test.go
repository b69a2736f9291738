package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/audit"
	"github.com/calebmartins/exportq/internal/common"
	"github.com/calebmartins/exportq/internal/entity"
)

// recordingSink captures events in arrival order.
type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Record(_ context.Context, ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// startedOrder returns job ids in the order their job_started events fired.
// Dispatch runs on a single goroutine, so this order is deterministic.
func (s *recordingSink) startedOrder() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for _, ev := range s.events {
		if ev.Type == audit.EventJobStarted {
			out = append(out, ev.JobID)
		}
	}
	return out
}

func okEngine() Engine {
	return EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		return json.RawMessage(`{"ok":true}`), nil
	})
}

// gatedEngine blocks every call until the gate is closed, then succeeds.
func gatedEngine(gate <-chan struct{}) Engine {
	return EngineFunc(func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
		select {
		case <-gate:
			return json.RawMessage(`{}`), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

func testConfig(maxConcurrent int) Config {
	return Config{
		MaxConcurrent:  maxConcurrent,
		PriorityLevels: 3,
		Retry: RetryPolicy{
			MaxRetries: 0,
			BaseDelay:  10 * time.Millisecond,
		},
		Limits: ResourceLimits{MaxQueueSize: 100},
	}
}

func shutdown(t *testing.T, m *Manager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestAddJob_RunsToCompletion(t *testing.T) {
	done := make(chan entity.ExportJob, 1)
	m := New(testConfig(1), okEngine())
	defer shutdown(t, m)
	m.OnComplete(func(job entity.ExportJob) { done <- job })

	id, err := m.AddJob(context.Background(), json.RawMessage(`{"doc":"a"}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case job := <-done:
		if job.ID != id {
			t.Errorf("completed job id = %s, want %s", job.ID, id)
		}
		if job.Status != constants.JobStatusComplete {
			t.Errorf("status = %s, want COMPLETE", job.Status)
		}
		if job.StartedAt == nil || job.CompletedAt == nil {
			t.Error("StartedAt/CompletedAt must be stamped on completion")
		}
		if string(job.Result) != `{"ok":true}` {
			t.Errorf("result = %s", job.Result)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("completion callback never fired")
	}
}

func TestDispatch_PriorityScenario(t *testing.T) {
	// maxConcurrent=2, priorities [0,0,2,1,0]: jobs 3 and 4 must start
	// before any priority-0 job beyond the first two dispatched.
	sink := &recordingSink{}
	gate := make(chan struct{})
	m := New(testConfig(2), gatedEngine(gate), WithAuditSink(sink))
	defer shutdown(t, m)

	var wg sync.WaitGroup
	wg.Add(5)
	m.OnComplete(func(entity.ExportJob) { wg.Done() })

	var ids []uuid.UUID
	for _, p := range []int{0, 0, 2, 1, 0} {
		id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), p)
		if err != nil {
			t.Fatalf("AddJob: %v", err)
		}
		ids = append(ids, id)
	}

	// Both workers must be busy with the first two submissions before the
	// gate opens, otherwise the ordering below is not forced.
	waitFor(t, time.Second, func() bool {
		busy := 0
		for _, w := range m.WorkerStates() {
			if w.Status == constants.WorkerStatusBusy {
				busy++
			}
		}
		return busy == 2
	})
	close(gate)
	wg.Wait()

	// Events reach the sink through the async audit loop.
	waitFor(t, time.Second, func() bool { return len(sink.startedOrder()) == 5 })
	order := sink.startedOrder()
	pos := make(map[uuid.UUID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos[ids[2]] >= pos[ids[4]] {
		t.Errorf("priority-2 job started at %d, after priority-0 job at %d", pos[ids[2]], pos[ids[4]])
	}
	if pos[ids[3]] >= pos[ids[4]] {
		t.Errorf("priority-1 job started at %d, after priority-0 job at %d", pos[ids[3]], pos[ids[4]])
	}
}

func TestDispatch_FIFOWithinPriority(t *testing.T) {
	sink := &recordingSink{}
	m := New(testConfig(1), okEngine(), WithAuditSink(sink))
	defer shutdown(t, m)

	var wg sync.WaitGroup
	wg.Add(3)
	m.OnComplete(func(entity.ExportJob) { wg.Done() })

	m.Pause(context.Background())
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 1)
		if err != nil {
			t.Fatalf("AddJob: %v", err)
		}
		ids = append(ids, id)
	}
	m.Resume(context.Background())
	wg.Wait()

	waitFor(t, time.Second, func() bool { return len(sink.startedOrder()) == 3 })
	order := sink.startedOrder()
	for i := range ids {
		if order[i] != ids[i] {
			t.Fatalf("dispatch order %v, want submission order %v", order, ids)
		}
	}
}

func TestAddJob_QueueFull(t *testing.T) {
	cfg := testConfig(1)
	cfg.Limits.MaxQueueSize = 2
	m := New(cfg, okEngine())
	defer shutdown(t, m)

	m.Pause(context.Background())
	for i := 0; i < 2; i++ {
		if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
			t.Fatalf("AddJob #%d: %v", i, err)
		}
	}
	_, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if !errors.Is(err, common.ErrQueueFull) {
		t.Errorf("AddJob over limit = %v, want ErrQueueFull", err)
	}
}

func TestAddBatch_PartialSuccess(t *testing.T) {
	cfg := testConfig(1)
	cfg.Limits.MaxQueueSize = 3
	m := New(cfg, okEngine())
	defer shutdown(t, m)

	m.Pause(context.Background())
	items := make([]BatchItem, 5)
	for i := range items {
		items[i] = BatchItem{Payload: json.RawMessage(`{}`), Priority: 0}
	}
	ids := m.AddBatch(context.Background(), items)
	if len(ids) != 3 {
		t.Errorf("accepted %d items, want 3 (queue cap)", len(ids))
	}
}

func TestCancelJob_Queued(t *testing.T) {
	m := New(testConfig(1), okEngine())
	defer shutdown(t, m)

	m.Pause(context.Background())
	id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	before := m.GetQueueStatus().QueuedJobs

	if !m.CancelJob(context.Background(), id) {
		t.Fatal("CancelJob = false, want true")
	}
	job, ok := m.GetJobStatus(id)
	if !ok {
		t.Fatal("job vanished from table")
	}
	if job.Status != constants.JobStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", job.Status)
	}
	if job.CompletedAt == nil {
		t.Error("CompletedAt must be stamped on cancellation")
	}
	if got := m.GetQueueStatus().QueuedJobs; got != before-1 {
		t.Errorf("queued count = %d, want %d", got, before-1)
	}

	// Terminal and unknown ids mutate nothing.
	if m.CancelJob(context.Background(), id) {
		t.Error("second CancelJob should be false")
	}
	if m.CancelJob(context.Background(), uuid.New()) {
		t.Error("CancelJob on unknown id should be false")
	}
}

func TestCancelJob_Processing(t *testing.T) {
	started := make(chan struct{})
	engine := EngineFunc(func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	failed := make(chan struct{}, 1)
	m := New(testConfig(1), engine)
	defer shutdown(t, m)
	m.OnFailed(func(entity.ExportJob) { failed <- struct{}{} })

	id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	<-started

	if !m.CancelJob(context.Background(), id) {
		t.Fatal("CancelJob on processing job = false")
	}

	// The worker frees up once the engine observes the cancellation.
	waitFor(t, time.Second, func() bool {
		ws := m.WorkerStates()
		return ws[0].Status == constants.WorkerStatusIdle
	})
	job, _ := m.GetJobStatus(id)
	if job.Status != constants.JobStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", job.Status)
	}
	select {
	case <-failed:
		t.Error("cancellation must not fire the failure callback")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestReprioritizeJob(t *testing.T) {
	sink := &recordingSink{}
	m := New(testConfig(1), okEngine(), WithAuditSink(sink))
	defer shutdown(t, m)

	var wg sync.WaitGroup
	wg.Add(2)
	m.OnComplete(func(entity.ExportJob) { wg.Done() })

	m.Pause(context.Background())
	a, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	b, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)

	if !m.ReprioritizeJob(b, 2) {
		t.Fatal("ReprioritizeJob = false, want true")
	}
	if m.ReprioritizeJob(uuid.New(), 1) {
		t.Error("ReprioritizeJob on unknown id should be false")
	}
	m.Resume(context.Background())
	wg.Wait()

	waitFor(t, time.Second, func() bool { return len(sink.startedOrder()) == 2 })
	order := sink.startedOrder()
	if order[0] != b || order[1] != a {
		t.Errorf("dispatch order = %v, want [%s %s]", order, b, a)
	}

	// Terminal jobs cannot be reprioritized.
	if m.ReprioritizeJob(a, 1) {
		t.Error("ReprioritizeJob on terminal job should be false")
	}
}

func TestGetBatchStatus_SkipsUnknownIDs(t *testing.T) {
	m := New(testConfig(1), okEngine())
	defer shutdown(t, m)

	m.Pause(context.Background())
	a, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	b, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 1)
	unknown := uuid.New()

	got := m.GetBatchStatus([]uuid.UUID{a, unknown, b})
	if len(got) != 2 {
		t.Fatalf("GetBatchStatus returned %d entries, want 2", len(got))
	}
	if _, ok := got[unknown]; ok {
		t.Error("unknown id must be skipped, not returned")
	}
	if got[a].ID != a || got[b].ID != b {
		t.Errorf("snapshots carry wrong ids: %v / %v", got[a].ID, got[b].ID)
	}
	if got[a].Status != constants.JobStatusQueued {
		t.Errorf("status = %s, want QUEUED", got[a].Status)
	}
}

func TestCancelBatch_CountsOnlyCancelled(t *testing.T) {
	done := make(chan uuid.UUID, 1)
	m := New(testConfig(1), okEngine())
	defer shutdown(t, m)
	m.OnComplete(func(job entity.ExportJob) { done <- job.ID })

	finished, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	<-done

	m.Pause(context.Background())
	a, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	b, _ := m.AddJob(context.Background(), json.RawMessage(`{}`), 2)

	// Unknown and terminal ids must not count.
	n := m.CancelBatch(context.Background(), []uuid.UUID{a, uuid.New(), finished, b})
	if n != 2 {
		t.Errorf("CancelBatch = %d, want 2", n)
	}
	for _, id := range []uuid.UUID{a, b} {
		if job, _ := m.GetJobStatus(id); job.Status != constants.JobStatusCancelled {
			t.Errorf("job %s status = %s, want CANCELLED", id, job.Status)
		}
	}
	if job, _ := m.GetJobStatus(finished); job.Status != constants.JobStatusComplete {
		t.Errorf("completed job status = %s after CancelBatch, want COMPLETE", job.Status)
	}
}

func TestGetQueueStatus_Accounting(t *testing.T) {
	var wg sync.WaitGroup
	engine := EngineFunc(func(_ context.Context, payload json.RawMessage) (json.RawMessage, error) {
		if string(payload) == `"fail"` {
			return nil, fmt.Errorf("BROKEN")
		}
		return json.RawMessage(`{}`), nil
	})
	m := New(testConfig(2), engine)
	defer shutdown(t, m)
	m.OnComplete(func(entity.ExportJob) { wg.Done() })
	m.OnFailed(func(entity.ExportJob) { wg.Done() })

	wg.Add(6)
	for i := 0; i < 4; i++ {
		if _, err := m.AddJob(context.Background(), json.RawMessage(`"ok"`), i%3); err != nil {
			t.Fatalf("AddJob: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := m.AddJob(context.Background(), json.RawMessage(`"fail"`), 0); err != nil {
			t.Fatalf("AddJob: %v", err)
		}
	}
	wg.Wait()

	st := m.GetQueueStatus()
	sum := st.QueuedJobs + st.ProcessingJobs + st.CompletedJobs + st.FailedJobs + st.CancelledJobs
	if sum != st.TotalJobs {
		t.Errorf("status counts sum to %d, want TotalJobs=%d", sum, st.TotalJobs)
	}
	if st.CompletedJobs != 4 || st.FailedJobs != 2 {
		t.Errorf("completed=%d failed=%d, want 4/2", st.CompletedJobs, st.FailedJobs)
	}
	if st.AverageProcessingTime < 0 {
		t.Errorf("AverageProcessingTime = %v", st.AverageProcessingTime)
	}
	if st.AverageWaitTime < 0 {
		t.Errorf("AverageWaitTime = %v", st.AverageWaitTime)
	}
}

func TestGetQueueStatus_EstimatesZeroBeforeFirstCompletion(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	m := New(testConfig(1), gatedEngine(gate))
	defer shutdown(t, m)

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	st := m.GetQueueStatus()
	if st.AverageProcessingTime != 0 || st.EstimatedTimeLeft != 0 {
		t.Errorf("estimates = %v/%v, want 0 before first completion",
			st.AverageProcessingTime, st.EstimatedTimeLeft)
	}
}

func TestPauseResume(t *testing.T) {
	started := make(chan struct{}, 1)
	engine := EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		started <- struct{}{}
		return json.RawMessage(`{}`), nil
	})
	m := New(testConfig(1), engine)
	defer shutdown(t, m)

	m.Pause(context.Background())
	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case <-started:
		t.Fatal("job dispatched while paused")
	case <-time.After(50 * time.Millisecond):
	}
	if !m.GetQueueStatus().Paused {
		t.Error("queue status should report paused")
	}

	m.Resume(context.Background())
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job not dispatched after resume")
	}
}

func TestCleanupCompleted(t *testing.T) {
	done := make(chan uuid.UUID, 1)
	m := New(testConfig(1), okEngine())
	defer shutdown(t, m)
	m.OnComplete(func(job entity.ExportJob) { done <- job.ID })

	id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	<-done

	if removed := m.CleanupCompleted(0); removed != 1 {
		t.Errorf("CleanupCompleted(0) = %d, want 1", removed)
	}
	if _, ok := m.GetJobStatus(id); ok {
		t.Error("job still visible after cleanup")
	}
	if removed := m.CleanupCompleted(0); removed != 0 {
		t.Errorf("second cleanup removed %d, want 0", removed)
	}
}

func TestCleanupCompleted_KeepsLiveAndRecentJobs(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	m := New(testConfig(1), gatedEngine(gate))
	defer shutdown(t, m)

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	waitFor(t, time.Second, func() bool {
		return m.GetQueueStatus().ProcessingJobs == 1
	})
	if removed := m.CleanupCompleted(0); removed != 0 {
		t.Errorf("cleanup removed %d in-flight jobs, want 0", removed)
	}
}

func TestResourceMonitor_VetoDefersDispatch(t *testing.T) {
	var allow sync.Map
	allow.Store("ok", false)
	monitor := MonitorFunc(func() Decision {
		v, _ := allow.Load("ok")
		if v.(bool) {
			return Decision{CanProceed: true}
		}
		return Decision{CanProceed: false, Reason: "memory ceiling"}
	})

	done := make(chan struct{}, 1)
	cfg := testConfig(1)
	cfg.Limits.PauseOnLimitBreach = true
	m := New(cfg, okEngine(),
		WithMonitor(monitor),
		WithResourceRecheckDelay(10*time.Millisecond),
	)
	defer shutdown(t, m)
	m.OnComplete(func(entity.ExportJob) { done <- struct{}{} })

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case <-done:
		t.Fatal("job dispatched despite resource veto")
	case <-time.After(30 * time.Millisecond):
	}

	allow.Store("ok", true)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch never resumed after the monitor recovered")
	}
}

func TestProcessingTimeout_RacesTheCall(t *testing.T) {
	engine := EngineFunc(func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	cfg := testConfig(1)
	cfg.Limits.MaxProcessingTime = 30 * time.Millisecond
	failed := make(chan entity.ExportJob, 1)
	m := New(cfg, engine)
	defer shutdown(t, m)
	m.OnFailed(func(job entity.ExportJob) { failed <- job })

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case job := <-failed:
		if job.Status != constants.JobStatusFailed {
			t.Errorf("status = %s, want FAILED", job.Status)
		}
		if job.LastError == nil {
			t.Fatal("LastError not set on timeout")
		}
		if want := "PROCESSING_TIMEOUT"; !strings.Contains(*job.LastError, want) {
			t.Errorf("LastError = %q, want it to contain %q", *job.LastError, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed-out job never failed")
	}
}

func TestShutdown_RejectsNewWork(t *testing.T) {
	m := New(testConfig(1), okEngine())
	shutdown(t, m)

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); !errors.Is(err, common.ErrShuttingDown) {
		t.Errorf("AddJob after shutdown = %v, want ErrShuttingDown", err)
	}
	if err := m.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown = %v, want nil", err)
	}
}

func TestPayloadValidator_RejectsBeforeEnqueue(t *testing.T) {
	m := New(testConfig(1), okEngine(),
		WithPayloadValidator(func(p json.RawMessage) error {
			if len(p) == 0 {
				return errors.New("empty payload")
			}
			return nil
		}),
	)
	defer shutdown(t, m)

	if _, err := m.AddJob(context.Background(), nil, 0); err == nil {
		t.Error("AddJob with rejected payload should fail")
	}
	if st := m.GetQueueStatus(); st.TotalJobs != 0 {
		t.Errorf("rejected submission was registered: total=%d", st.TotalJobs)
	}
}

func TestAuditEvents_PerJobCausalOrder(t *testing.T) {
	// Instant jobs race their own submission/start events if delivery is not
	// sequenced: a sink must never see completed before submitted or started.
	sink := &recordingSink{}
	cfg := testConfig(4)
	cfg.Limits.MaxQueueSize = 500
	m := New(cfg, okEngine(), WithAuditSink(sink))

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	m.OnComplete(func(entity.ExportJob) { wg.Done() })

	for i := 0; i < n; i++ {
		if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), i%3); err != nil {
			t.Fatalf("AddJob #%d: %v", i, err)
		}
	}
	wg.Wait()
	// Shutdown drains the audit queue before returning.
	shutdown(t, m)

	sink.mu.Lock()
	seq := make(map[uuid.UUID][]audit.EventType)
	for _, ev := range sink.events {
		seq[ev.JobID] = append(seq[ev.JobID], ev.Type)
	}
	sink.mu.Unlock()

	if len(seq) != n {
		t.Fatalf("events recorded for %d jobs, want %d", len(seq), n)
	}
	want := []audit.EventType{audit.EventJobSubmitted, audit.EventJobStarted, audit.EventJobCompleted}
	for id, got := range seq {
		if len(got) != len(want) {
			t.Fatalf("job %s event sequence %v, want %v", id, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("job %s event sequence %v, want %v", id, got, want)
			}
		}
	}
}
