package queue

import (
	"testing"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/entity"
)

func newJob(priority int) *entity.ExportJob {
	return &entity.ExportJob{
		ID:       uuid.New(),
		Priority: priority,
		Status:   constants.JobStatusQueued,
	}
}

func TestNext_StrictPriorityOrder(t *testing.T) {
	q := NewPriority(3)

	low := newJob(0)
	mid := newJob(1)
	high := newJob(2)

	q.Add(low)
	q.Add(mid)
	q.Add(high)

	want := []uuid.UUID{high.ID, mid.ID, low.ID}
	for i, id := range want {
		got := q.Next()
		if got == nil {
			t.Fatalf("Next() #%d = nil, want job %s", i, id)
		}
		if got.ID != id {
			t.Errorf("Next() #%d = %s, want %s", i, got.ID, id)
		}
	}
	if q.Next() != nil {
		t.Error("Next() on drained queue should be nil")
	}
}

func TestNext_FIFOWithinLevel(t *testing.T) {
	q := NewPriority(3)

	a := newJob(1)
	b := newJob(1)
	c := newJob(1)
	for _, j := range []*entity.ExportJob{a, b, c} {
		if !q.Add(j) {
			t.Fatalf("Add(%s) = false", j.ID)
		}
	}

	for i, want := range []uuid.UUID{a.ID, b.ID, c.ID} {
		if got := q.Next(); got.ID != want {
			t.Errorf("Next() #%d = %s, want %s", i, got.ID, want)
		}
	}
}

func TestAdd_DuplicateID(t *testing.T) {
	q := NewPriority(2)
	j := newJob(0)

	if !q.Add(j) {
		t.Fatal("first Add = false")
	}
	if q.Add(j) {
		t.Error("second Add of same id should be rejected")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestAdd_ClampsPriority(t *testing.T) {
	q := NewPriority(3)

	over := newJob(99)
	under := newJob(-5)
	q.Add(over)
	q.Add(under)

	if got := q.LenAt(2); got != 1 {
		t.Errorf("LenAt(2) = %d, want 1 (clamped high)", got)
	}
	if got := q.LenAt(0); got != 1 {
		t.Errorf("LenAt(0) = %d, want 1 (clamped low)", got)
	}
}

func TestRemove(t *testing.T) {
	q := NewPriority(2)

	a := newJob(1)
	b := newJob(1)
	c := newJob(0)
	q.Add(a)
	q.Add(b)
	q.Add(c)

	if !q.Remove(b.ID) {
		t.Fatal("Remove(b) = false, want true")
	}
	if q.Remove(b.ID) {
		t.Error("second Remove(b) should be false")
	}
	if q.Remove(uuid.New()) {
		t.Error("Remove(unknown) should be false")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}

	// b must be gone from dispatch order.
	if got := q.Next(); got.ID != a.ID {
		t.Errorf("Next() = %s, want %s", got.ID, a.ID)
	}
	if got := q.Next(); got.ID != c.ID {
		t.Errorf("Next() = %s, want %s", got.ID, c.ID)
	}
}

func TestContainsAndLen(t *testing.T) {
	q := NewPriority(2)
	j := newJob(0)

	if q.Contains(j.ID) {
		t.Error("Contains before Add should be false")
	}
	q.Add(j)
	if !q.Contains(j.ID) {
		t.Error("Contains after Add should be true")
	}
	q.Next()
	if q.Contains(j.ID) {
		t.Error("Contains after Next should be false")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}
