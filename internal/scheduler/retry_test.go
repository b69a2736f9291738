package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/entity"
)

func retryTestConfig(maxRetries int, baseDelay time.Duration, exponential bool) Config {
	return Config{
		MaxConcurrent:  1,
		PriorityLevels: 3,
		Retry: RetryPolicy{
			MaxRetries:          maxRetries,
			BaseDelay:           baseDelay,
			ExponentialBackoff:  exponential,
			RetryableErrorCodes: []string{"TIMEOUT"},
		},
		Limits: ResourceLimits{MaxQueueSize: 10},
	}
}

func TestRetryCoordinator_Classify(t *testing.T) {
	rc := retryCoordinator{policy: RetryPolicy{
		MaxRetries:          2,
		RetryableErrorCodes: []string{"TIMEOUT", "UNAVAILABLE"},
	}}

	if !rc.retryable(errors.New("upstream TIMEOUT after 30s")) {
		t.Error("TIMEOUT error should be retryable")
	}
	if rc.retryable(errors.New("document not found")) {
		t.Error("unlisted error should not be retryable")
	}
	if rc.retryable(nil) {
		t.Error("nil error should not be retryable")
	}
	if rc.shouldRetry(errors.New("TIMEOUT"), 2) {
		t.Error("retries exhausted, shouldRetry must be false")
	}
	if !rc.shouldRetry(errors.New("TIMEOUT"), 1) {
		t.Error("one retry left, shouldRetry must be true")
	}
}

func TestRetryCoordinator_Delay(t *testing.T) {
	exp := retryCoordinator{policy: RetryPolicy{BaseDelay: 100 * time.Millisecond, ExponentialBackoff: true}}
	flat := retryCoordinator{policy: RetryPolicy{BaseDelay: 100 * time.Millisecond}}

	cases := []struct {
		retryCount int
		wantExp    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
	}
	for _, c := range cases {
		if got := exp.delay(c.retryCount); got != c.wantExp {
			t.Errorf("exponential delay(%d) = %v, want %v", c.retryCount, got, c.wantExp)
		}
		if got := flat.delay(c.retryCount); got != 100*time.Millisecond {
			t.Errorf("flat delay(%d) = %v, want 100ms", c.retryCount, got)
		}
	}
}

func TestRetry_ExhaustsThenFails(t *testing.T) {
	// Policy {maxRetries:2, baseDelay, exponential, ["TIMEOUT"]} and an
	// engine that always throws TIMEOUT: the job must end FAILED after
	// exactly 2 retries (3 total attempts).
	var attempts atomic.Int32
	engine := EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		attempts.Add(1)
		return nil, fmt.Errorf("TIMEOUT: render upstream")
	})

	failed := make(chan entity.ExportJob, 1)
	var failures atomic.Int32
	start := time.Now()
	m := New(retryTestConfig(2, 20*time.Millisecond, true), engine)
	defer shutdown(t, m)
	m.OnFailed(func(job entity.ExportJob) {
		failures.Add(1)
		failed <- job
	})

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	var job entity.ExportJob
	select {
	case job = <-failed:
	case <-time.After(5 * time.Second):
		t.Fatal("job never reached FAILED")
	}

	if got := attempts.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
	if job.RetryCount != 2 {
		t.Errorf("RetryCount = %d, want 2", job.RetryCount)
	}
	if job.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want FAILED", job.Status)
	}
	if job.LastError == nil {
		t.Error("LastError must be retained")
	}
	// Backoff floor: 20ms then 40ms between attempts.
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("job failed after %v, backoff demands at least 60ms", elapsed)
	}

	// The failed callback fires exactly once, after retries are exhausted.
	time.Sleep(20 * time.Millisecond)
	if got := failures.Load(); got != 1 {
		t.Errorf("failure callbacks = %d, want 1", got)
	}
}

func TestRetry_RecoversAndKeepsLastError(t *testing.T) {
	var attempts atomic.Int32
	engine := EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		if attempts.Add(1) == 1 {
			return nil, fmt.Errorf("TIMEOUT: transient")
		}
		return json.RawMessage(`{"ok":true}`), nil
	})

	done := make(chan entity.ExportJob, 1)
	m := New(retryTestConfig(3, 10*time.Millisecond, false), engine)
	defer shutdown(t, m)
	m.OnComplete(func(job entity.ExportJob) { done <- job })

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case job := <-done:
		if job.Status != constants.JobStatusComplete {
			t.Errorf("status = %s, want COMPLETE", job.Status)
		}
		if job.RetryCount != 1 {
			t.Errorf("RetryCount = %d, want 1", job.RetryCount)
		}
		if job.LastError == nil {
			t.Error("LastError must survive a successful retry")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("job never completed")
	}
}

func TestRetry_NonRetryableFailsImmediately(t *testing.T) {
	var attempts atomic.Int32
	engine := EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		attempts.Add(1)
		return nil, errors.New("MALFORMED_SELECTION: zone out of bounds")
	})

	failed := make(chan entity.ExportJob, 1)
	m := New(retryTestConfig(3, 10*time.Millisecond, true), engine)
	defer shutdown(t, m)
	m.OnFailed(func(job entity.ExportJob) { failed <- job })

	if _, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	select {
	case job := <-failed:
		if got := attempts.Load(); got != 1 {
			t.Errorf("attempts = %d, want 1", got)
		}
		if job.RetryCount != 0 {
			t.Errorf("RetryCount = %d, want 0", job.RetryCount)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job never failed")
	}
}

func TestRetry_CancelDuringRetryDelay(t *testing.T) {
	var attempts atomic.Int32
	engine := EngineFunc(func(context.Context, json.RawMessage) (json.RawMessage, error) {
		attempts.Add(1)
		return nil, fmt.Errorf("TIMEOUT: flaky")
	})

	m := New(retryTestConfig(5, 500*time.Millisecond, false), engine)
	defer shutdown(t, m)

	id, err := m.AddJob(context.Background(), json.RawMessage(`{}`), 0)
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	// Wait for the first failure to put the job into its retry delay.
	waitFor(t, 2*time.Second, func() bool { return attempts.Load() >= 1 })
	waitFor(t, 2*time.Second, func() bool {
		job, ok := m.GetJobStatus(id)
		return ok && job.Status == constants.JobStatusQueued && job.RetryCount == 1
	})

	if !m.CancelJob(context.Background(), id) {
		t.Fatal("CancelJob during retry delay = false, want true")
	}

	// The pending requeue must have been discarded: no further attempts.
	time.Sleep(600 * time.Millisecond)
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts after cancel = %d, want 1", got)
	}
	job, _ := m.GetJobStatus(id)
	if job.Status != constants.JobStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", job.Status)
	}
}
