package behave

import (
	"sync"

	"github.com/enetx/behave/rover"
	"github.com/enetx/g"
)

// Interface compliance check.
var _ Machine = (*SyncEngine)(nil)

// SyncEngine is a mutex wrapper around an Engine for deployments where the
// sensor stream ticks the engine on one goroutine while a dashboard reads
// Current, History or ToDOT from another. Ticks stay strictly serialized:
// at most one Process call is ever in flight.
type SyncEngine struct {
	engine *Engine
	mu     sync.RWMutex
}

// NewSyncEngine wraps an engine. The engine must not be used directly
// afterwards.
func NewSyncEngine(e *Engine) *SyncEngine {
	return &SyncEngine{engine: e}
}

// Process is the thread-safe version of Engine.Process.
func (se *SyncEngine) Process(st rover.Status, grid *rover.Grid) rover.Command {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.Process(st, grid)
}

// Current is the thread-safe version of Engine.Current.
func (se *SyncEngine) Current() StateID {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.Current()
}

// Context is the thread-safe version of Engine.Context.
func (se *SyncEngine) Context() Context {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.Context()
}

// Reset is the thread-safe version of Engine.Reset.
func (se *SyncEngine) Reset() {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.engine.Reset()
}

// History is the thread-safe version of Engine.History.
func (se *SyncEngine) History() g.Slice[StateID] {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.History()
}

// States is the thread-safe version of Engine.States.
func (se *SyncEngine) States() g.Slice[StateID] {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.States()
}

// ToDOT is the thread-safe version of Engine.ToDOT.
func (se *SyncEngine) ToDOT() g.String {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the engine snapshot.
func (se *SyncEngine) MarshalJSON() ([]byte, error) {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return se.engine.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of an engine snapshot.
func (se *SyncEngine) UnmarshalJSON(data []byte) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.UnmarshalJSON(data)
}
