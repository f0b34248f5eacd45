package board

import (
	"sync"
	"time"

	"github.com/ryvens/repdash/internal/core/expand"
)

// StateManager holds the current board result and the expand/collapse
// overrides in a thread-safe manner. The boards themselves are immutable
// once built; only the pointer swaps.
type StateManager struct {
	mu sync.RWMutex

	current *Result
	expand  *expand.State
	search  string

	lastDataUpdate int64 // Timestamp of last successful rebuild
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		expand: expand.NewState(),
	}
}

// Current returns the latest rebuild result, which may be nil before the
// first pass completes.
func (sm *StateManager) Current() *Result {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.current
}

// SetCurrent swaps in a fresh rebuild result.
func (sm *StateManager) SetCurrent(result *Result) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.current = result
	sm.lastDataUpdate = time.Now().Unix()
}

// ExpandState returns the shared expand/collapse override map.
func (sm *StateManager) ExpandState() *expand.State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.expand
}

// Search returns the current search filter.
func (sm *StateManager) Search() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.search
}

// SetSearch stores the search filter used for the next rebuild.
func (sm *StateManager) SetSearch(search string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.search = search
}

// LastDataUpdate returns the timestamp of the last successful rebuild.
func (sm *StateManager) LastDataUpdate() int64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastDataUpdate
}
