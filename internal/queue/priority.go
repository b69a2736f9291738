// Package queue implements the multi-level FIFO used by the batch export
// manager: one list per priority level plus an id index for O(1) removal.
package queue

import (
	"container/list"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/internal/entity"
)

type indexEntry struct {
	level int
	elem  *list.Element
}

// Priority is a strict-priority queue: Next serves the highest non-empty
// level, FIFO within a level. Not safe for concurrent use; the manager
// serializes access under its own lock.
type Priority struct {
	levels []*list.List
	index  map[uuid.UUID]indexEntry
}

// NewPriority creates a queue with the given number of priority levels.
// Priority values are clamped into [0, levels).
func NewPriority(levels int) *Priority {
	if levels < 1 {
		levels = 1
	}
	q := &Priority{
		levels: make([]*list.List, levels),
		index:  make(map[uuid.UUID]indexEntry),
	}
	for i := range q.levels {
		q.levels[i] = list.New()
	}
	return q
}

// Levels returns the number of priority levels.
func (q *Priority) Levels() int {
	return len(q.levels)
}

// Clamp bounds p into the valid priority range.
func (q *Priority) Clamp(p int) int {
	if p < 0 {
		return 0
	}
	if p >= len(q.levels) {
		return len(q.levels) - 1
	}
	return p
}

// Add appends the job at the tail of its priority level. A job id may be
// present at most once; re-adding an id that is already queued is a no-op
// returning false.
func (q *Priority) Add(job *entity.ExportJob) bool {
	if _, ok := q.index[job.ID]; ok {
		return false
	}
	level := q.Clamp(job.Priority)
	elem := q.levels[level].PushBack(job)
	q.index[job.ID] = indexEntry{level: level, elem: elem}
	return true
}

// Next pops the head of the highest-priority non-empty list, or nil when
// the queue is empty.
func (q *Priority) Next() *entity.ExportJob {
	for level := len(q.levels) - 1; level >= 0; level-- {
		l := q.levels[level]
		front := l.Front()
		if front == nil {
			continue
		}
		l.Remove(front)
		job := front.Value.(*entity.ExportJob)
		delete(q.index, job.ID)
		return job
	}
	return nil
}

// Remove splices the job out of its list in O(1). Returns whether it was
// queued.
func (q *Priority) Remove(id uuid.UUID) bool {
	entry, ok := q.index[id]
	if !ok {
		return false
	}
	q.levels[entry.level].Remove(entry.elem)
	delete(q.index, id)
	return true
}

// Contains reports whether the job id is currently queued.
func (q *Priority) Contains(id uuid.UUID) bool {
	_, ok := q.index[id]
	return ok
}

// Len is the total number of queued jobs across all levels.
func (q *Priority) Len() int {
	return len(q.index)
}

// LenAt is the number of queued jobs at the given (clamped) priority level.
func (q *Priority) LenAt(priority int) int {
	return q.levels[q.Clamp(priority)].Len()
}
