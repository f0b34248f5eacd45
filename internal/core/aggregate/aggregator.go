// Package aggregate reduces per-character progress pairs to a single best
// value per faction and classifies factions as account-wide.
package aggregate

import (
	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/core/progress"
	"github.com/ryvens/repdash/internal/core/rank"
)

// Fold reduces pairs to the best reading plus the full contributor list.
// Pairs must arrive in a fixed, reproducible order (the builder emits roster
// order); the fold replaces best only on a strictly higher reading, so on
// exact ties the first-seen character stays best across runs. Returns false
// when there is nothing to fold.
func Fold(pairs []progress.Pair) (progress.Pair, []model.Contributor, bool) {
	if len(pairs) == 0 {
		return progress.Pair{}, nil, false
	}

	best := pairs[0]
	contributors := make([]model.Contributor, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))

	for _, p := range pairs {
		if _, dup := seen[p.Character.Key]; dup {
			continue
		}
		seen[p.Character.Key] = struct{}{}
		contributors = append(contributors, model.Contributor{
			Character: p.Character,
			Snapshot:  p.Snapshot,
		})
		if rank.IsHigher(p.Snapshot, best.Snapshot) {
			best = p
		}
	}

	return best, contributors, true
}
