package aggregate

import (
	"testing"

	"github.com/ryvens/repdash/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func contributor(key string, snap model.ProgressSnapshot) model.Contributor {
	return model.Contributor{
		Character: model.CharacterRef{Key: key, Name: key},
		Snapshot:  snap,
	}
}

func TestClassify(t *testing.T) {
	tied := model.ProgressSnapshot{
		Kind:         model.KindStanding,
		StandingID:   model.StandingExalted,
		CurrentValue: 1000,
		MaxValue:     1000,
	}
	differs := tied
	differs.CurrentValue = 999

	tests := []struct {
		name         string
		rec          model.FactionRecord
		contributors []model.Contributor
		want         bool
	}{
		{
			name:         "explicit source flag wins",
			rec:          model.FactionRecord{IsAccountWide: true},
			contributors: []model.Contributor{contributor("Aria-Proudmoore", tied)},
			want:         true,
		},
		{
			name:         "major faction is always account-wide",
			rec:          model.FactionRecord{IsMajorFaction: true},
			contributors: []model.Contributor{contributor("Aria-Proudmoore", differs), contributor("Bren-Proudmoore", tied)},
			want:         true,
		},
		{
			name:         "single contributor defers to explicit flag",
			rec:          model.FactionRecord{},
			contributors: []model.Contributor{contributor("Aria-Proudmoore", tied)},
			want:         false,
		},
		{
			name:         "no contributors defers to explicit flag",
			rec:          model.FactionRecord{},
			contributors: nil,
			want:         false,
		},
		{
			name: "pairwise equal tuples infer account-wide",
			rec:  model.FactionRecord{},
			contributors: []model.Contributor{
				contributor("Aria-Proudmoore", tied),
				contributor("Bren-Proudmoore", tied),
				contributor("Cyra-Stormrage", tied),
			},
			want: true,
		},
		{
			name: "any mismatch stays character-specific",
			rec:  model.FactionRecord{},
			contributors: []model.Contributor{
				contributor("Aria-Proudmoore", tied),
				contributor("Bren-Proudmoore", differs),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rec, tt.contributors))
		})
	}
}

func TestClassifyTupleCoversRewardPending(t *testing.T) {
	base := model.ProgressSnapshot{
		Kind:       model.KindStanding,
		StandingID: model.StandingExalted,
		Paragon:    &model.Paragon{Value: 500, Threshold: 10000},
	}
	pending := base
	pending.Paragon = &model.Paragon{Value: 500, Threshold: 10000, RewardPending: true}

	got := Classify(model.FactionRecord{}, []model.Contributor{
		contributor("Aria-Proudmoore", base),
		contributor("Bren-Proudmoore", pending),
	})
	assert.False(t, got, "a pending reward on one character is a tuple mismatch")
}

func TestClassifyIgnoresNonComparableFields(t *testing.T) {
	a := model.ProgressSnapshot{Kind: model.KindStanding, StandingID: 5, CurrentValue: 100, IsWatched: true, LastUpdated: 111}
	b := model.ProgressSnapshot{Kind: model.KindStanding, StandingID: 5, CurrentValue: 100, IsWatched: false, LastUpdated: 999}

	got := Classify(model.FactionRecord{}, []model.Contributor{
		contributor("Aria-Proudmoore", a),
		contributor("Bren-Proudmoore", b),
	})
	assert.True(t, got, "watch flags and timestamps are not part of the comparison tuple")
}
