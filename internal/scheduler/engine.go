package scheduler

import (
	"context"
	"encoding/json"
)

// Engine is the external export call the scheduler dispatches to. The payload
// is opaque: document reference, selection, target formats and per-job options
// travel through untouched.
//
// Execute must honor ctx: cancellation of a processing job and the per-job
// processing-time ceiling are both delivered through ctx, and an engine that
// ignores it keeps its worker slot occupied until it returns on its own.
type Engine interface {
	Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

func (f EngineFunc) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return f(ctx, payload)
}
