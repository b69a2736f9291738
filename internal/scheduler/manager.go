// Package scheduler implements the batch export scheduling engine: a
// priority queue of export jobs dispatched to a fixed worker pool, with
// admission control, retry with backoff, and live status reporting.
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/audit"
	"github.com/calebmartins/exportq/internal/common"
	"github.com/calebmartins/exportq/internal/entity"
	"github.com/calebmartins/exportq/internal/observability"
	"github.com/calebmartins/exportq/internal/queue"
)

// Callback receives a snapshot of a job that reached a terminal outcome.
// Callbacks fire exactly once per job: retries do not fire the failed
// callback until retries are exhausted.
type Callback func(job entity.ExportJob)

// BatchItem is one entry of an AddBatch call.
type BatchItem struct {
	Payload  json.RawMessage
	Priority int
}

// Manager owns the queue, the worker pool and the retry coordinator. One
// mutex serializes every mutation of the job table, the queue and the
// workers; the only long-running call (the engine) runs outside it.
type Manager struct {
	cfg     Config
	engine  Engine
	logger  *slog.Logger
	sink    audit.Sink
	monitor Monitor
	retry   retryCoordinator

	validate func(json.RawMessage) error

	mu      sync.Mutex
	jobs    map[uuid.UUID]*entity.ExportJob
	queue   *queue.Priority
	workers []*worker
	paused  bool
	closed  bool

	// cancels holds the context cancel for every in-flight engine call;
	// retryTimers holds pending requeue timers for jobs in their retry delay.
	cancels     map[uuid.UUID]context.CancelFunc
	retryTimers map[uuid.UUID]*time.Timer

	resourceTimer *time.Timer
	recheckDelay  time.Duration

	onComplete []Callback
	onFailed   []Callback

	// aggregates for GetQueueStatus estimates
	waitTotal time.Duration
	waitCount int
	procTotal time.Duration
	procCount int

	dispatchCh chan struct{}
	stopCh     chan struct{}
	wg         sync.WaitGroup

	// Ordered audit pipeline: events are appended under mu so the sink
	// observes per-job transitions in commit order, and delivered by a
	// single goroutine (emitLoop).
	evMu    sync.Mutex
	evQueue []audit.Event
	evCh    chan struct{} // cap 1
	evQuit  chan struct{}
	evDone  chan struct{}
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMonitor sets the admission-control probe queried before dispatch.
func WithMonitor(mon Monitor) Option {
	return func(m *Manager) { m.monitor = mon }
}

// WithAuditSink sets the sink lifecycle events are reported to.
func WithAuditSink(sink audit.Sink) Option {
	return func(m *Manager) {
		if sink != nil {
			m.sink = sink
		}
	}
}

// WithPayloadValidator installs a submission-time payload check. A non-nil
// error rejects the job before it is enqueued.
func WithPayloadValidator(fn func(json.RawMessage) error) Option {
	return func(m *Manager) { m.validate = fn }
}

// WithResourceRecheckDelay overrides how long a vetoed dispatch pass waits
// before probing again.
func WithResourceRecheckDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.recheckDelay = d
		}
	}
}

// New creates a Manager and starts its dispatch loop.
func New(cfg Config, engine Engine, opts ...Option) *Manager {
	cfg = cfg.withDefaults()
	m := &Manager{
		cfg:          cfg,
		engine:       engine,
		logger:       slog.Default(),
		sink:         audit.NopSink{},
		monitor:      NewMemoryMonitor(cfg.Limits.MaxMemoryMB),
		retry:        retryCoordinator{policy: cfg.Retry},
		jobs:         make(map[uuid.UUID]*entity.ExportJob),
		queue:        queue.NewPriority(cfg.PriorityLevels),
		workers:      newWorkerPool(cfg.MaxConcurrent),
		cancels:      make(map[uuid.UUID]context.CancelFunc),
		retryTimers:  make(map[uuid.UUID]*time.Timer),
		recheckDelay: resourceRecheckDelay,
		dispatchCh:   make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
		evCh:         make(chan struct{}, 1),
		evQuit:       make(chan struct{}),
		evDone:       make(chan struct{}),
	}
	for _, o := range opts {
		o(m)
	}
	m.wg.Add(1)
	go m.loop()
	go m.emitLoop()
	m.logger.Info("scheduler.started",
		"max_concurrent", cfg.MaxConcurrent,
		"priority_levels", cfg.PriorityLevels,
		"max_queue_size", cfg.Limits.MaxQueueSize,
	)
	return m
}

// OnComplete registers a manager-wide completion callback.
func (m *Manager) OnComplete(cb Callback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onComplete = append(m.onComplete, cb)
}

// OnFailed registers a manager-wide terminal-failure callback.
func (m *Manager) OnFailed(cb Callback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onFailed = append(m.onFailed, cb)
}

// AddJob validates the submission, registers the job and enqueues it.
// Rejected submissions (full queue, bad payload) are never enqueued.
func (m *Manager) AddJob(ctx context.Context, payload json.RawMessage, priority int) (uuid.UUID, error) {
	if m.validate != nil {
		if err := m.validate(payload); err != nil {
			return uuid.Nil, common.NewAppError("INVALID_PAYLOAD", "payload rejected", err)
		}
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return uuid.Nil, common.ErrShuttingDown
	}
	if m.queue.Len() >= m.cfg.Limits.MaxQueueSize {
		m.mu.Unlock()
		return uuid.Nil, common.NewAppError("QUEUE_FULL",
			fmt.Sprintf("queue size limit %d reached", m.cfg.Limits.MaxQueueSize), common.ErrQueueFull)
	}

	job := &entity.ExportJob{
		ID:        uuid.New(),
		Payload:   payload,
		Priority:  m.queue.Clamp(priority),
		Status:    constants.JobStatusQueued,
		CreatedAt: time.Now(),
	}
	m.jobs[job.ID] = job
	m.queue.Add(job)
	observability.JobsSubmitted.WithLabelValues(fmt.Sprintf("%d", job.Priority)).Inc()
	observability.QueueDepth.Set(float64(m.queue.Len()))
	m.record(m.event(audit.EventJobSubmitted, job, ""))
	m.mu.Unlock()

	m.logger.Info("scheduler.job.submitted", "job_id", job.ID, "priority", job.Priority)
	m.notify()
	return job.ID, nil
}

// AddBatch submits each item, skipping individual failures. It returns the
// ids of the jobs that were accepted.
func (m *Manager) AddBatch(ctx context.Context, items []BatchItem) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for i, item := range items {
		id, err := m.AddJob(ctx, item.Payload, item.Priority)
		if err != nil {
			m.logger.Warn("scheduler.batch.item_rejected", "index", i, "error", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// CancelJob cancels a queued or processing job. Queued jobs are removed from
// the queue synchronously; for processing jobs the cancellation is advisory,
// delivered through the engine call's context. Returns false for unknown or
// already-terminal jobs.
func (m *Manager) CancelJob(ctx context.Context, id uuid.UUID) bool {
	m.mu.Lock()
	job, ok := m.jobs[id]
	if !ok || job.Status.Terminal() {
		m.mu.Unlock()
		return false
	}

	now := time.Now()
	var cancel context.CancelFunc
	switch job.Status {
	case constants.JobStatusQueued:
		m.queue.Remove(id)
		if t, ok := m.retryTimers[id]; ok {
			t.Stop()
			delete(m.retryTimers, id)
		}
		job.Status = constants.JobStatusCancelled
		job.CompletedAt = &now
		observability.JobsProcessed.WithLabelValues("cancelled").Inc()
		observability.QueueDepth.Set(float64(m.queue.Len()))
	case constants.JobStatusProcessing:
		// Cooperative: flip the status, cancel the call's context, and let
		// the worker observe it when the engine returns.
		job.Status = constants.JobStatusCancelled
		job.CompletedAt = &now
		cancel = m.cancels[id]
	}
	m.record(m.event(audit.EventJobCancelled, job, ""))
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.logger.Info("scheduler.job.cancelled", "job_id", id)
	return true
}

// CancelBatch cancels each id, returning how many were actually cancelled.
func (m *Manager) CancelBatch(ctx context.Context, ids []uuid.UUID) int {
	n := 0
	for _, id := range ids {
		if m.CancelJob(ctx, id) {
			n++
		}
	}
	return n
}

// ReprioritizeJob moves a queued job to a new (clamped) priority level.
// Only valid while the job is queued; returns false otherwise.
func (m *Manager) ReprioritizeJob(id uuid.UUID, newPriority int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok || job.Status != constants.JobStatusQueued {
		return false
	}
	job.Priority = m.queue.Clamp(newPriority)
	if m.queue.Remove(id) {
		// Re-add at the tail of the new level. A job waiting out a retry
		// delay is not in the queue; its recorded priority is used when the
		// requeue timer fires.
		m.queue.Add(job)
	}
	return true
}

// GetJobStatus returns a snapshot of the job, if known.
func (m *Manager) GetJobStatus(id uuid.UUID) (entity.ExportJob, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return entity.ExportJob{}, false
	}
	return *job, true
}

// GetBatchStatus returns snapshots for the known ids among those given.
func (m *Manager) GetBatchStatus(ids []uuid.UUID) map[uuid.UUID]entity.ExportJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]entity.ExportJob, len(ids))
	for _, id := range ids {
		if job, ok := m.jobs[id]; ok {
			out[id] = *job
		}
	}
	return out
}

// Jobs returns snapshots of every tracked job, newest submissions last.
func (m *Manager) Jobs() []entity.ExportJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.ExportJob, 0, len(m.jobs))
	for _, job := range m.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// GetQueueStatus aggregates per-status counts and timing estimates. The
// estimates stay zero until at least one job has started/completed.
func (m *Manager) GetQueueStatus() entity.QueueStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := entity.QueueStatus{Paused: m.paused, TotalJobs: len(m.jobs)}
	for _, job := range m.jobs {
		switch job.Status {
		case constants.JobStatusQueued:
			st.QueuedJobs++
		case constants.JobStatusProcessing:
			st.ProcessingJobs++
		case constants.JobStatusComplete:
			st.CompletedJobs++
		case constants.JobStatusFailed:
			st.FailedJobs++
		case constants.JobStatusCancelled:
			st.CancelledJobs++
		}
	}
	if m.waitCount > 0 {
		st.AverageWaitTime = m.waitTotal / time.Duration(m.waitCount)
	}
	if m.procCount > 0 {
		st.AverageProcessingTime = m.procTotal / time.Duration(m.procCount)
		pending := st.QueuedJobs + st.ProcessingJobs
		slots := pending
		if m.cfg.MaxConcurrent < slots {
			slots = m.cfg.MaxConcurrent
		}
		if slots > 0 {
			st.EstimatedTimeLeft = time.Duration(float64(pending) / float64(slots) * float64(st.AverageProcessingTime))
		}
	}
	return st
}

// WorkerStates returns a snapshot of every pool slot.
func (m *Manager) WorkerStates() []entity.WorkerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.WorkerState, len(m.workers))
	for i, w := range m.workers {
		out[i] = w.snapshot()
	}
	return out
}

// Pause stops the dispatch loop from making new assignments. In-flight jobs
// run to completion and their workers keep their real status.
func (m *Manager) Pause(ctx context.Context) {
	m.mu.Lock()
	if m.paused {
		m.mu.Unlock()
		return
	}
	m.paused = true
	m.record(audit.Event{Type: audit.EventQueuePaused, At: time.Now()})
	m.mu.Unlock()

	m.logger.Info("scheduler.paused")
}

// Resume re-enables dispatch and immediately triggers a pass.
func (m *Manager) Resume(ctx context.Context) {
	m.mu.Lock()
	if !m.paused {
		m.mu.Unlock()
		return
	}
	m.paused = false
	m.record(audit.Event{Type: audit.EventQueueResumed, At: time.Now()})
	m.mu.Unlock()

	m.logger.Info("scheduler.resumed")
	m.notify()
}

// CleanupCompleted purges terminal jobs whose completion is older than the
// cutoff and returns how many were removed. This is the only mechanism that
// bounds job-table growth.
func (m *Manager) CleanupCompleted(olderThan time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for id, job := range m.jobs {
		if !job.Status.Terminal() || job.CompletedAt == nil {
			continue
		}
		if job.CompletedAt.After(cutoff) {
			continue
		}
		delete(m.jobs, id)
		removed++
	}
	if removed > 0 {
		m.logger.Info("scheduler.cleanup", "removed", removed)
	}
	return removed
}

// Shutdown stops the dispatch loop, discards pending retry timers and waits
// for in-flight engine calls to settle. If ctx expires first, the in-flight
// contexts are cancelled and ctx's error is returned.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	for id, t := range m.retryTimers {
		t.Stop()
		delete(m.retryTimers, id)
	}
	if m.resourceTimer != nil {
		m.resourceTimer.Stop()
		m.resourceTimer = nil
	}
	m.mu.Unlock()
	close(m.stopCh)

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.stopEmitter()
		m.logger.Info("scheduler.stopped")
		return nil
	case <-ctx.Done():
		m.mu.Lock()
		for _, cancel := range m.cancels {
			cancel()
		}
		m.mu.Unlock()
		m.logger.Warn("scheduler.shutdown.interrupted", "error", ctx.Err())
		<-done
		m.stopEmitter()
		return ctx.Err()
	}
}

// stopEmitter quits the audit loop after the final drain. Only the first
// Shutdown reaches here; repeat calls return early on the closed flag.
func (m *Manager) stopEmitter() {
	close(m.evQuit)
	<-m.evDone
}

// notify wakes the dispatch loop. The cap-1 channel coalesces bursts: a
// pending signal already covers all work queued before the loop wakes.
func (m *Manager) notify() {
	select {
	case m.dispatchCh <- struct{}{}:
	default:
	}
}

func (m *Manager) loop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			return
		case <-m.dispatchCh:
			m.dispatch()
		}
	}
}

// dispatch is one pass of the core control loop: admission check, then match
// idle workers to queued jobs until either runs out.
func (m *Manager) dispatch() {
	m.mu.Lock()
	if m.closed || m.paused {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if dec := m.check(); !dec.CanProceed {
		observability.DispatchVetoes.Inc()
		m.logger.Warn("scheduler.dispatch.vetoed", "reason", dec.Reason)
		if m.cfg.Limits.PauseOnLimitBreach {
			m.scheduleRecheck()
		}
		return
	}

	m.mu.Lock()
	if m.closed || m.paused {
		m.mu.Unlock()
		return
	}
	for {
		w := m.idleWorker()
		if w == nil {
			break
		}
		job := m.queue.Next()
		if job == nil {
			break
		}

		now := time.Now()
		job.Status = constants.JobStatusProcessing
		job.StartedAt = &now
		m.waitTotal += now.Sub(job.CreatedAt)
		m.waitCount++
		w.assign(job.ID)

		ctx, cancel := m.jobContext()
		m.cancels[job.ID] = cancel
		// Record before launching so the started event is sequenced ahead
		// of anything the job's own settlement records.
		m.record(m.event(audit.EventJobStarted, job, ""))
		m.wg.Add(1)
		go m.runJob(w, job, ctx, cancel)

		m.logger.Debug("scheduler.job.started", "job_id", job.ID, "worker", w.id)
	}
	observability.QueueDepth.Set(float64(m.queue.Len()))
	m.mu.Unlock()
}

func (m *Manager) check() Decision {
	if m.monitor == nil {
		return Decision{CanProceed: true}
	}
	return m.monitor.Check()
}

// scheduleRecheck arms a single timed re-probe instead of busy-polling a
// vetoing monitor.
func (m *Manager) scheduleRecheck() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.resourceTimer != nil {
		return
	}
	m.resourceTimer = time.AfterFunc(m.recheckDelay, func() {
		m.mu.Lock()
		m.resourceTimer = nil
		m.mu.Unlock()
		m.notify()
	})
}

func (m *Manager) idleWorker() *worker {
	for _, w := range m.workers {
		if w.status == constants.WorkerStatusIdle {
			return w
		}
	}
	return nil
}

func (m *Manager) jobContext() (context.Context, context.CancelFunc) {
	if m.cfg.Limits.MaxProcessingTime > 0 {
		return context.WithTimeout(context.Background(), m.cfg.Limits.MaxProcessingTime)
	}
	return context.WithCancel(context.Background())
}

// runJob executes the engine call for one assignment and settles the
// outcome. Engine panics are contained here so a bad engine can never crash
// the dispatch loop or leave a worker permanently busy.
func (m *Manager) runJob(w *worker, job *entity.ExportJob, ctx context.Context, cancel context.CancelFunc) {
	defer m.wg.Done()
	defer cancel()

	result, err := m.execute(ctx, job)
	m.settle(w, job, ctx, result, err)
}

func (m *Manager) execute(ctx context.Context, job *entity.ExportJob) (result json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export engine panic: %v", r)
			m.logger.Error("scheduler.engine.panic", "job_id", job.ID, "panic", r)
		}
	}()
	return m.engine.Execute(common.WithJobID(ctx, job.ID.String()), job.Payload)
}

// settle runs the state transition for a finished engine call and frees the
// worker, then re-triggers dispatch so the slot is reused immediately.
func (m *Manager) settle(w *worker, job *entity.ExportJob, ctx context.Context, result json.RawMessage, err error) {
	now := time.Now()

	m.mu.Lock()
	delete(m.cancels, job.ID)

	var callbacks []Callback
	var snapshot entity.ExportJob

	switch {
	case job.Status == constants.JobStatusCancelled:
		// Cancelled while in flight; CancelJob already stamped the terminal
		// state and reported the event. Just account for the slot.
		observability.JobsProcessed.WithLabelValues("cancelled").Inc()

	case err == nil:
		job.Status = constants.JobStatusComplete
		job.Result = result
		job.CompletedAt = &now
		m.recordProcessing(job, now)
		observability.JobsProcessed.WithLabelValues("complete").Inc()
		m.record(m.event(audit.EventJobCompleted, job, ""))
		callbacks = append(callbacks, m.onComplete...)
		snapshot = *job

	default:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("PROCESSING_TIMEOUT: export exceeded %s: %w", m.cfg.Limits.MaxProcessingTime, err)
		}
		errText := err.Error()
		job.LastError = &errText

		if m.retry.shouldRetry(err, job.RetryCount) {
			job.RetryCount++
			job.Status = constants.JobStatusQueued
			delay := m.retry.delay(job.RetryCount)
			id := job.ID
			// Requeued at the job's recorded priority once the delay
			// elapses; the timer is discarded if the job is cancelled or
			// the manager shuts down first.
			if !m.closed {
				m.retryTimers[id] = time.AfterFunc(delay, func() { m.requeue(id) })
			}
			observability.JobRetries.Inc()
			m.record(m.event(audit.EventJobRetried, job, errText))
			m.logger.Warn("scheduler.job.retry",
				"job_id", job.ID, "retry_count", job.RetryCount, "delay", delay, "error", errText)
		} else {
			job.Status = constants.JobStatusFailed
			job.CompletedAt = &now
			m.recordProcessing(job, now)
			observability.JobsProcessed.WithLabelValues("failed").Inc()
			m.record(m.event(audit.EventJobFailed, job, errText))
			callbacks = append(callbacks, m.onFailed...)
			snapshot = *job
			m.logger.Error("scheduler.job.failed", "job_id", job.ID, "retry_count", job.RetryCount, "error", errText)
		}
	}

	w.reset()
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(snapshot)
	}
	m.notify()
}

func (m *Manager) recordProcessing(job *entity.ExportJob, finished time.Time) {
	if job.StartedAt == nil {
		return
	}
	d := finished.Sub(*job.StartedAt)
	m.procTotal += d
	m.procCount++
	observability.JobDuration.Observe(d.Seconds())
}

// requeue reinserts a job whose retry delay elapsed, unless it was cancelled
// or the manager closed in the meantime.
func (m *Manager) requeue(id uuid.UUID) {
	m.mu.Lock()
	delete(m.retryTimers, id)
	job, ok := m.jobs[id]
	if !ok || m.closed || job.Status != constants.JobStatusQueued {
		m.mu.Unlock()
		return
	}
	m.queue.Add(job)
	observability.QueueDepth.Set(float64(m.queue.Len()))
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) event(t audit.EventType, job *entity.ExportJob, detail string) audit.Event {
	ev := audit.Event{
		Type:       t,
		JobID:      job.ID,
		Priority:   job.Priority,
		RetryCount: job.RetryCount,
		Detail:     detail,
		At:         time.Now(),
	}
	switch t {
	case audit.EventJobSubmitted:
		ev.Payload = job.Payload
	case audit.EventJobCompleted:
		ev.Result = job.Result
	}
	return ev
}

// record appends an event to the ordered audit queue. Callers hold m.mu, so
// append order matches the order the state transitions committed in; the sink
// therefore never sees a job's events out of causal order.
func (m *Manager) record(events ...audit.Event) {
	m.evMu.Lock()
	m.evQueue = append(m.evQueue, events...)
	m.evMu.Unlock()
	select {
	case m.evCh <- struct{}{}:
	default:
	}
}

// emitLoop is the single consumer of the audit queue. It drains fully on quit
// so Shutdown leaves no event behind.
func (m *Manager) emitLoop() {
	defer close(m.evDone)
	for {
		select {
		case <-m.evCh:
			m.flushEvents()
		case <-m.evQuit:
			m.flushEvents()
			return
		}
	}
}

func (m *Manager) flushEvents() {
	for {
		m.evMu.Lock()
		batch := m.evQueue
		m.evQueue = nil
		m.evMu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, ev := range batch {
			m.deliver(ev)
		}
	}
}

// deliver reports one event to the audit sink. Sink behavior never affects
// scheduling: a panicking sink is contained and logged.
func (m *Manager) deliver(ev audit.Event) {
	if m.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("scheduler.audit.panic", "panic", r)
		}
	}()
	m.sink.Record(context.Background(), ev)
}
