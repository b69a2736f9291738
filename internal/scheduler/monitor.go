package scheduler

import (
	"fmt"
	"runtime"
)

// Decision is the outcome of an admission-control probe.
type Decision struct {
	CanProceed bool
	Reason     string
}

// Monitor is the pluggable admission-control probe queried before each
// dispatch pass.
type Monitor interface {
	Check() Decision
}

// MonitorFunc adapts a function to the Monitor interface.
type MonitorFunc func() Decision

func (f MonitorFunc) Check() Decision {
	return f()
}

// MemoryMonitor vetoes dispatch while the Go heap exceeds a ceiling.
type MemoryMonitor struct {
	maxMemoryMB int
}

// NewMemoryMonitor creates a monitor for the given ceiling in MB.
// A non-positive ceiling never vetoes.
func NewMemoryMonitor(maxMemoryMB int) *MemoryMonitor {
	return &MemoryMonitor{maxMemoryMB: maxMemoryMB}
}

func (m *MemoryMonitor) Check() Decision {
	if m.maxMemoryMB <= 0 {
		return Decision{CanProceed: true}
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	usedMB := int(ms.HeapAlloc / (1 << 20))
	if usedMB >= m.maxMemoryMB {
		return Decision{
			CanProceed: false,
			Reason:     fmt.Sprintf("memory usage %dMB exceeds limit %dMB", usedMB, m.maxMemoryMB),
		}
	}
	return Decision{CanProceed: true}
}
