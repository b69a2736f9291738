package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimedScheduler submits jobs to a Manager at a future instant or on a
// recurring interval. It is a thin layer: each schedule is one goroutine
// waiting on a timer or ticker, stopped by Cancel or Stop.
type TimedScheduler struct {
	manager *Manager
	logger  *slog.Logger

	mu      sync.Mutex
	entries map[uuid.UUID]chan struct{}
	stopped bool

	wg sync.WaitGroup
}

// NewTimedScheduler creates a scheduler submitting into the given manager.
func NewTimedScheduler(manager *Manager, logger *slog.Logger) *TimedScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimedScheduler{
		manager: manager,
		logger:  logger,
		entries: make(map[uuid.UUID]chan struct{}),
	}
}

// ScheduleAt submits the payload once when the instant arrives. Instants in
// the past submit immediately. The returned id cancels the schedule, not the
// job it may already have produced.
func (s *TimedScheduler) ScheduleAt(at time.Time, payload json.RawMessage, priority int) uuid.UUID {
	id := uuid.New()
	done := s.register(id)
	if done == nil {
		return uuid.Nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.unregister(id)

		timer := time.NewTimer(time.Until(at))
		defer timer.Stop()
		select {
		case <-done:
			return
		case <-timer.C:
		}
		if _, err := s.manager.AddJob(context.Background(), payload, priority); err != nil {
			s.logger.Warn("scheduler.timed.submit_failed", "schedule_id", id, "error", err)
		}
	}()

	s.logger.Info("scheduler.timed.at", "schedule_id", id, "at", at)
	return id
}

// ScheduleRecurring submits the payload every interval until cancelled.
func (s *TimedScheduler) ScheduleRecurring(interval time.Duration, payload json.RawMessage, priority int) uuid.UUID {
	id := uuid.New()
	done := s.register(id)
	if done == nil {
		return uuid.Nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.unregister(id)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if _, err := s.manager.AddJob(context.Background(), payload, priority); err != nil {
					s.logger.Warn("scheduler.timed.submit_failed", "schedule_id", id, "error", err)
				}
			}
		}
	}()

	s.logger.Info("scheduler.timed.recurring", "schedule_id", id, "interval", interval)
	return id
}

// Cancel stops a schedule. Returns false if it is unknown or already fired.
func (s *TimedScheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	done, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()
	if ok {
		close(done)
	}
	return ok
}

// Stop cancels every schedule and waits for their goroutines to exit.
func (s *TimedScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, done := range s.entries {
		close(done)
		delete(s.entries, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *TimedScheduler) register(id uuid.UUID) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	done := make(chan struct{})
	s.entries[id] = done
	return done
}

func (s *TimedScheduler) unregister(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}
