// Package progress normalizes raw faction records into typed per-character
// progress snapshots and applies the dashboard search filter.
package progress

import (
	"fmt"
	"strings"

	"github.com/ryvens/repdash/internal/core/model"
)

// Pair anchors one normalized snapshot to the character it was read from.
type Pair struct {
	Character model.CharacterRef
	Snapshot  model.ProgressSnapshot
}

// Builder resolves raw records against a fixed roster. The roster order is
// load-bearing: every downstream fold inherits it, which is what makes ties
// deterministic.
type Builder struct {
	roster []model.CharacterRef
	search string
}

// NewBuilder creates a Builder for one aggregation pass. The search string
// is matched case-insensitively against faction display names.
func NewBuilder(roster []model.CharacterRef, search string) *Builder {
	return &Builder{
		roster: roster,
		search: strings.ToLower(search),
	}
}

// Build produces the faction's display name and its (character, snapshot)
// pairs in roster order.
//
// Account-wide records yield exactly one pair anchored to the first roster
// character; the anchor carries no individual meaning. Per-character records
// yield one pair per roster member present in the record; character keys
// that no longer resolve to a roster member are dropped silently. A faction
// whose name fails the search filter yields no pairs at all, so the result
// is consistent across characters.
func (b *Builder) Build(rec model.FactionRecord, meta model.FactionMetadata) (string, []Pair) {
	name := DisplayName(rec, meta)

	if b.search != "" && !strings.Contains(strings.ToLower(name), b.search) {
		return name, nil
	}

	if rec.IsAccountWide {
		if rec.Value == nil || len(b.roster) == 0 {
			return name, nil
		}
		return name, []Pair{{
			Character: b.roster[0],
			Snapshot:  Normalize(rec, *rec.Value),
		}}
	}

	var pairs []Pair
	for _, char := range b.roster {
		raw, ok := rec.Chars[char.Key]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{
			Character: char,
			Snapshot:  Normalize(rec, raw),
		})
	}
	return name, pairs
}

// BuildFor resolves a record against a single character, for the
// per-character view. Account-wide values apply to every character, so they
// anchor to the requested character; per-character records yield a pair only
// when that character has a reading.
func (b *Builder) BuildFor(rec model.FactionRecord, meta model.FactionMetadata, char model.CharacterRef) (string, []Pair) {
	name := DisplayName(rec, meta)

	if b.search != "" && !strings.Contains(strings.ToLower(name), b.search) {
		return name, nil
	}

	if rec.IsAccountWide {
		if rec.Value == nil {
			return name, nil
		}
		return name, []Pair{{Character: char, Snapshot: Normalize(rec, *rec.Value)}}
	}

	raw, ok := rec.Chars[char.Key]
	if !ok {
		return name, nil
	}
	return name, []Pair{{Character: char, Snapshot: Normalize(rec, raw)}}
}

// DisplayName resolves a faction's name: catalog metadata first, then the
// record-embedded name, then a synthesized placeholder.
func DisplayName(rec model.FactionRecord, meta model.FactionMetadata) string {
	if meta.Name != "" {
		return meta.Name
	}
	if rec.Name != "" {
		return rec.Name
	}
	return fmt.Sprintf("Faction %d", rec.FactionID)
}

// Normalize converts a raw wire reading into a typed snapshot. The primary
// representation is picked from what the reading actually carries: a named
// rank means friendship, a renown level (or a record flagged as a renown or
// major faction) means renown, anything else is classic standing.
func Normalize(rec model.FactionRecord, raw model.RawProgress) model.ProgressSnapshot {
	snap := model.ProgressSnapshot{
		CurrentValue: raw.CurrentValue,
		MaxValue:     raw.MaxValue,
		IsWatched:    raw.IsWatched,
		AtWarWith:    raw.AtWarWith,
		LastUpdated:  raw.LastUpdated,
	}

	switch {
	case raw.RankName != "":
		snap.Kind = model.KindFriendship
		snap.RankName = raw.RankName
	case raw.RenownLevel.Int() > 0 || rec.IsRenown || rec.IsMajorFaction:
		snap.Kind = model.KindRenown
		snap.RenownLevel = raw.RenownLevel.Int()
		snap.RenownMaxLevel = raw.RenownMaxLevel.Int()
	default:
		snap.Kind = model.KindStanding
		snap.StandingID = raw.StandingID
	}

	if raw.ParagonThreshold > 0 {
		snap.Paragon = &model.Paragon{
			Value:         raw.ParagonValue,
			Threshold:     raw.ParagonThreshold,
			RewardPending: raw.ParagonRewardPending,
		}
	}

	return snap
}
