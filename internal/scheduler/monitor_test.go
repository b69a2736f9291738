package scheduler

import "testing"

func TestMemoryMonitor_DisabledNeverVetoes(t *testing.T) {
	for _, ceiling := range []int{0, -1} {
		m := NewMemoryMonitor(ceiling)
		if dec := m.Check(); !dec.CanProceed {
			t.Errorf("ceiling %d: Check() vetoed: %s", ceiling, dec.Reason)
		}
	}
}

func TestMemoryMonitor_HugeCeilingProceeds(t *testing.T) {
	m := NewMemoryMonitor(1 << 20) // 1TB, far above any test heap
	if dec := m.Check(); !dec.CanProceed {
		t.Errorf("Check() vetoed under a 1TB ceiling: %s", dec.Reason)
	}
}

func TestMemoryMonitor_TinyCeilingVetoes(t *testing.T) {
	// Any live Go heap exceeds 1MB in practice; expect a veto with a reason.
	m := NewMemoryMonitor(1)
	dec := m.Check()
	if dec.CanProceed {
		t.Skip("heap below 1MB, cannot exercise the veto path")
	}
	if dec.Reason == "" {
		t.Error("veto must carry a reason")
	}
}
