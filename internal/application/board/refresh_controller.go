package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/data/account"
	"github.com/ryvens/repdash/internal/util"
)

// Result is the output of one full rebuild: both view modes plus the roster
// context the renderer needs for defaults.
type Result struct {
	Filtered           *model.FilteredBoard
	PerCharacter       []model.CharacterBoard
	ActiveCharacterKey string
	ExportedAt         int64
}

// RefreshController reloads the snapshot and reruns the whole pipeline. A
// minimum interval between rebuilds bounds how often external triggers
// (file events, key presses) can force a pass; a pass itself is always a
// full rebuild with no caching.
type RefreshController struct {
	snapshotPath string
	options      *Options
	minInterval  time.Duration

	refreshMutex sync.Mutex // Prevent concurrent refreshes
	lastRefresh  time.Time
}

// NewRefreshController creates a controller for the given snapshot file.
func NewRefreshController(snapshotPath string, minInterval time.Duration, options *Options) *RefreshController {
	return &RefreshController{
		snapshotPath: snapshotPath,
		options:      options,
		minInterval:  minInterval,
	}
}

// Refresh performs a throttled full rebuild. Returns (nil, false, nil) when
// the call lands inside the minimum interval and is dropped.
func (rc *RefreshController) Refresh(search string) (*Result, bool, error) {
	rc.refreshMutex.Lock()
	defer rc.refreshMutex.Unlock()

	if !rc.lastRefresh.IsZero() && time.Since(rc.lastRefresh) < rc.minInterval {
		util.LogDebugf("Refresh dropped: within minimum interval %v", rc.minInterval)
		return nil, false, nil
	}

	result, err := rc.rebuild(search)
	if err != nil {
		return nil, false, err
	}

	rc.lastRefresh = time.Now()
	return result, true, nil
}

// ForceRefresh performs a full rebuild regardless of the interval gate.
func (rc *RefreshController) ForceRefresh(search string) (*Result, error) {
	rc.refreshMutex.Lock()
	defer rc.refreshMutex.Unlock()

	result, err := rc.rebuild(search)
	if err != nil {
		return nil, err
	}

	rc.lastRefresh = time.Now()
	return result, nil
}

func (rc *RefreshController) rebuild(search string) (*Result, error) {
	start := time.Now()

	store, err := account.Load(rc.snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	engine := NewEngine(store, store, store, rc.options)
	result := &Result{
		Filtered:           engine.BuildFiltered(search),
		PerCharacter:       engine.BuildPerCharacter(search),
		ActiveCharacterKey: store.ActiveCharacterKey(),
		ExportedAt:         store.ExportedAt(),
	}

	util.LogDebugf("Full rebuild completed in %v", time.Since(start))
	return result, nil
}
