// Package grouping organizes aggregated factions into the ordered, nested
// header tree the renderer consumes.
package grouping

import "github.com/ryvens/repdash/internal/core/model"

// DefaultNestingExceptions lists faction names that always render as direct
// top-level entries even though their parent chain points at a parent
// faction. The set is configurable so the exception policy stays visible.
var DefaultNestingExceptions = []string{
	"Winterpelt Furbolg",
	"Glimmerogg Racer",
}

// Grouper builds header trees against a canonical header order.
type Grouper struct {
	exceptions map[string]struct{}
}

// NewGrouper creates a Grouper with the given nesting-exception names.
func NewGrouper(exceptions []string) *Grouper {
	g := &Grouper{exceptions: make(map[string]struct{}, len(exceptions))}
	for _, name := range exceptions {
		g.exceptions[name] = struct{}{}
	}
	return g
}

// Group walks the canonical headers in order and assembles one HeaderGroup
// per header that has at least one surviving faction. Within a header,
// faction order follows the canonical ID order; duplicate IDs in the
// canonical list are dropped via a per-header seen-set. Headers that end up
// empty are omitted entirely.
func (g *Grouper) Group(headers []model.CanonicalHeader, factions map[int]*model.AggregatedFaction) []model.HeaderGroup {
	var groups []model.HeaderGroup
	for _, header := range headers {
		seen := make(map[int]struct{}, len(header.FactionIDs))
		var included []*model.AggregatedFaction
		for _, id := range header.FactionIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if f, ok := factions[id]; ok {
				included = append(included, f)
			}
		}
		if len(included) == 0 {
			continue
		}
		groups = append(groups, model.HeaderGroup{
			Name:    header.Name,
			Entries: g.nest(included),
		})
	}
	return groups
}

// nest moves factions under their parent faction when one is present in the
// same header. A faction flagged isHeaderWithRep becomes a parent bucket;
// any other faction whose parent chain names that parent is moved under it
// in encounter order, unless the faction is on the exception list. Nesting
// never goes deeper than one level.
func (g *Grouper) nest(included []*model.AggregatedFaction) []model.HeaderEntry {
	parents := make(map[string]*model.HeaderEntry)
	for _, f := range included {
		if f.IsHeaderWithRep {
			parents[f.Name] = &model.HeaderEntry{Faction: f}
		}
	}

	var entries []model.HeaderEntry
	for _, f := range included {
		if f.IsHeaderWithRep {
			entries = append(entries, *parents[f.Name])
			continue
		}
		if parent := g.parentOf(f, parents); parent != nil {
			parent.Children = append(parent.Children, f)
			continue
		}
		entries = append(entries, model.HeaderEntry{Faction: f})
	}

	// Parent entries were copied into the slice before their children
	// arrived; re-point them at the filled buckets.
	for i := range entries {
		if entries[i].Faction.IsHeaderWithRep {
			entries[i] = *parents[entries[i].Faction.Name]
		}
	}
	return entries
}

func (g *Grouper) parentOf(f *model.AggregatedFaction, parents map[string]*model.HeaderEntry) *model.HeaderEntry {
	if len(f.ParentHeaderChain) < 2 {
		return nil
	}
	if _, excepted := g.exceptions[f.Name]; excepted {
		return nil
	}
	return parents[f.ParentHeaderChain[1]]
}
