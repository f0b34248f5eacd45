package aggregate

import "github.com/ryvens/repdash/internal/core/model"

// comparisonTuple is the projection of a snapshot used by the account-wide
// equality heuristic.
type comparisonTuple struct {
	renown        int
	standing      int
	currentValue  int
	paragonValue  int
	rewardPending bool
}

func tupleOf(s model.ProgressSnapshot) comparisonTuple {
	return comparisonTuple{
		renown:        s.RenownOrZero(),
		standing:      s.StandingOrZero(),
		currentValue:  s.CurrentValue,
		paragonValue:  s.ParagonValueOrZero(),
		rewardPending: s.HasPendingReward(),
	}
}

// Classify decides whether a faction's progress is account-wide.
//
// An explicit source flag or a major-faction record always wins. With a
// single contributor there is not enough evidence to infer anything, so the
// explicit flag (default false) stands. With two or more contributors, all
// of them matching on the comparison tuple classifies the faction as
// account-wide. That inference is a heuristic: two characters can
// coincidentally hold identical values at the moment of the scan.
func Classify(rec model.FactionRecord, contributors []model.Contributor) bool {
	if rec.IsAccountWide || rec.IsMajorFaction {
		return true
	}
	if len(contributors) <= 1 {
		return rec.IsAccountWide
	}

	first := tupleOf(contributors[0].Snapshot)
	for _, c := range contributors[1:] {
		if tupleOf(c.Snapshot) != first {
			return false
		}
	}
	return true
}
