package model

// Contributor is one character's reading that fed an aggregation.
type Contributor struct {
	Character CharacterRef
	Snapshot  ProgressSnapshot
}

// AggregatedFaction is the reduced, single-value view of one faction across
// the whole roster. Contributors holds every reading (at most one per
// character key); BestCharacter is always one of the contributors, or the
// roster representative when the value is explicitly account-wide.
type AggregatedFaction struct {
	FactionID         int
	Name              string
	Icon              int
	IsHeaderWithRep   bool
	ParentHeaderChain []string
	Snapshot          ProgressSnapshot
	BestCharacter     CharacterRef
	IsAccountWide     bool
	Contributors      []Contributor
}

// HasPendingReward reports whether any contributor has an unclaimed
// paragon reward for this faction.
func (a *AggregatedFaction) HasPendingReward() bool {
	for _, c := range a.Contributors {
		if c.Snapshot.HasPendingReward() {
			return true
		}
	}
	return false
}

// HeaderEntry is one row inside a header: either a plain faction, or a
// parent faction (isHeaderWithRep) carrying its nested children. Nesting is
// one level deep only.
type HeaderEntry struct {
	Faction  *AggregatedFaction
	Children []*AggregatedFaction
}

// HeaderGroup is an ordered, named bucket of entries matching one canonical
// header. Headers with zero entries are never emitted.
type HeaderGroup struct {
	Name    string
	Entries []HeaderEntry
}

// BoardSection is one top-level collapsible section of the filtered board.
type BoardSection struct {
	Name   string
	Groups []HeaderGroup
}

// FilteredBoard is the aggregated view: every faction reduced to its best
// value, partitioned into the Account-Wide and Character-Based sections.
type FilteredBoard struct {
	Sections []BoardSection
}

// CharacterBoard is one character's slice of the per-character view.
type CharacterBoard struct {
	Character CharacterRef
	Groups    []HeaderGroup
}

// HasPendingReward reports whether any faction on this character's board has
// an unclaimed paragon reward. Drives the default expand state.
func (b CharacterBoard) HasPendingReward() bool {
	for _, g := range b.Groups {
		for _, e := range g.Entries {
			if e.Faction.HasPendingReward() {
				return true
			}
			for _, child := range e.Children {
				if child.HasPendingReward() {
					return true
				}
			}
		}
	}
	return false
}

// Section names of the filtered board.
const (
	SectionAccountWide    = "Account-Wide"
	SectionCharacterBased = "Character-Based"
)
