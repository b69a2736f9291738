package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/entity"
)

// worker is one pool slot. The pool size is fixed at construction; workers
// are never added or removed, only reset between jobs. All fields are
// guarded by the manager's mutex.
type worker struct {
	id            int
	status        constants.WorkerStatus
	currentJob    uuid.UUID // uuid.Nil when idle
	jobsProcessed int
	lastActivity  time.Time
}

func newWorkerPool(size int) []*worker {
	pool := make([]*worker, size)
	for i := range pool {
		pool[i] = &worker{
			id:           i,
			status:       constants.WorkerStatusIdle,
			lastActivity: time.Now(),
		}
	}
	return pool
}

func (w *worker) assign(jobID uuid.UUID) {
	w.status = constants.WorkerStatusBusy
	w.currentJob = jobID
	w.lastActivity = time.Now()
}

// reset returns the slot to idle regardless of how the job settled, so the
// dispatch loop can reuse it.
func (w *worker) reset() {
	w.status = constants.WorkerStatusIdle
	w.currentJob = uuid.Nil
	w.jobsProcessed++
	w.lastActivity = time.Now()
}

func (w *worker) snapshot() entity.WorkerState {
	st := entity.WorkerState{
		ID:               w.id,
		Status:           w.status,
		JobsProcessed:    w.jobsProcessed,
		LastActivityTime: w.lastActivity,
	}
	if w.currentJob != uuid.Nil {
		id := w.currentJob
		st.CurrentJob = &id
	}
	return st
}
