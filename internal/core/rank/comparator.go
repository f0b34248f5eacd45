// Package rank defines the total order over progress snapshots used when
// reducing per-character readings to a single best value.
package rank

import "github.com/ryvens/repdash/internal/core/model"

// IsHigher reports whether a strictly outranks b. Exact ties return false
// both ways, so a fold that only replaces on true keeps the first-seen
// reading on ties.
//
// Tiers, first unequal one decides:
//  1. a comparable paragon track outranks none
//  2. higher paragon value
//  3. higher renown level (non-renown kinds count as 0)
//  4. higher classic standing (non-standing kinds count as 0)
//  5. higher current value
func IsHigher(a, b model.ProgressSnapshot) bool {
	if a.HasParagon() != b.HasParagon() {
		return a.HasParagon()
	}
	if a.HasParagon() && a.Paragon.Value != b.Paragon.Value {
		return a.Paragon.Value > b.Paragon.Value
	}
	if a.RenownOrZero() != b.RenownOrZero() {
		return a.RenownOrZero() > b.RenownOrZero()
	}
	if a.StandingOrZero() != b.StandingOrZero() {
		return a.StandingOrZero() > b.StandingOrZero()
	}
	return a.CurrentValue > b.CurrentValue
}

// Equal reports whether neither snapshot outranks the other.
func Equal(a, b model.ProgressSnapshot) bool {
	return !IsHigher(a, b) && !IsHigher(b, a)
}
