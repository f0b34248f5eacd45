package progress

import (
	"testing"

	"github.com/ryvens/repdash/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roster = []model.CharacterRef{
	{Key: "Aria-Proudmoore", Name: "Aria"},
	{Key: "Bren-Proudmoore", Name: "Bren"},
	{Key: "Cyra-Stormrage", Name: "Cyra"},
}

func charRecord(name string, chars map[string]model.RawProgress) model.FactionRecord {
	return model.FactionRecord{FactionID: 100, Name: name, Chars: chars}
}

func TestBuildRosterOrderAndResolution(t *testing.T) {
	rec := charRecord("Ironforge Brigade", map[string]model.RawProgress{
		"Cyra-Stormrage":  {StandingID: 5, CurrentValue: 100, MaxValue: 6000},
		"Aria-Proudmoore": {StandingID: 6, CurrentValue: 200, MaxValue: 12000},
		"Ghost-Deleted":   {StandingID: 8, CurrentValue: 999, MaxValue: 1000},
	})

	name, pairs := NewBuilder(roster, "").Build(rec, model.FactionMetadata{})

	assert.Equal(t, "Ironforge Brigade", name)
	// Pairs come back in roster order, and the unresolved key is dropped
	// silently.
	require.Len(t, pairs, 2)
	assert.Equal(t, "Aria-Proudmoore", pairs[0].Character.Key)
	assert.Equal(t, "Cyra-Stormrage", pairs[1].Character.Key)
}

func TestBuildAccountWideUsesRepresentative(t *testing.T) {
	rec := model.FactionRecord{
		FactionID:     9001,
		Name:          "Brood of Nozdormu",
		IsAccountWide: true,
		Value:         &model.RawProgress{StandingID: 8, CurrentValue: 0, MaxValue: 0},
	}

	_, pairs := NewBuilder(roster, "").Build(rec, model.FactionMetadata{})

	require.Len(t, pairs, 1)
	assert.Equal(t, roster[0], pairs[0].Character)
	assert.Equal(t, model.StandingExalted, pairs[0].Snapshot.StandingID)
}

func TestBuildAccountWideEmptyRoster(t *testing.T) {
	rec := model.FactionRecord{
		FactionID:     9001,
		IsAccountWide: true,
		Value:         &model.RawProgress{StandingID: 8},
	}

	_, pairs := NewBuilder(nil, "").Build(rec, model.FactionMetadata{})
	assert.Empty(t, pairs)
}

func TestBuildSearchFilter(t *testing.T) {
	brigade := charRecord("Ironforge Brigade", map[string]model.RawProgress{
		"Aria-Proudmoore": {StandingID: 5},
	})
	sentinels := charRecord("Silverwing Sentinels", map[string]model.RawProgress{
		"Aria-Proudmoore": {StandingID: 5},
	})

	builder := NewBuilder(roster, "IRON")

	_, pairs := builder.Build(brigade, model.FactionMetadata{})
	assert.Len(t, pairs, 1, "matching faction survives, case-insensitively")

	_, pairs = builder.Build(sentinels, model.FactionMetadata{})
	assert.Empty(t, pairs, "non-matching faction is excluded entirely")
}

func TestBuildSearchMatchesCatalogName(t *testing.T) {
	// The filter runs against the resolved display name, so catalog
	// metadata can make a record searchable even when the record itself
	// carries no name.
	rec := charRecord("", map[string]model.RawProgress{
		"Aria-Proudmoore": {StandingID: 5},
	})

	_, pairs := NewBuilder(roster, "iron").Build(rec, model.FactionMetadata{Name: "Ironforge Brigade"})
	assert.Len(t, pairs, 1)
}

func TestBuildFor(t *testing.T) {
	rec := charRecord("Ironforge Brigade", map[string]model.RawProgress{
		"Bren-Proudmoore": {StandingID: 7, CurrentValue: 50, MaxValue: 21000},
	})

	builder := NewBuilder(roster, "")

	_, pairs := builder.BuildFor(rec, model.FactionMetadata{}, roster[1])
	require.Len(t, pairs, 1)
	assert.Equal(t, "Bren-Proudmoore", pairs[0].Character.Key)

	_, pairs = builder.BuildFor(rec, model.FactionMetadata{}, roster[0])
	assert.Empty(t, pairs, "no reading for this character")

	accountWide := model.FactionRecord{
		FactionID:     200,
		Name:          "Brood of Nozdormu",
		IsAccountWide: true,
		Value:         &model.RawProgress{StandingID: 8},
	}
	_, pairs = builder.BuildFor(accountWide, model.FactionMetadata{}, roster[2])
	require.Len(t, pairs, 1)
	assert.Equal(t, roster[2], pairs[0].Character, "account-wide value anchors to the requested character")
}

func TestDisplayNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		rec  model.FactionRecord
		meta model.FactionMetadata
		want string
	}{
		{
			name: "catalog wins",
			rec:  model.FactionRecord{FactionID: 7, Name: "Embedded"},
			meta: model.FactionMetadata{Name: "Catalog"},
			want: "Catalog",
		},
		{
			name: "record name when catalog is silent",
			rec:  model.FactionRecord{FactionID: 7, Name: "Embedded"},
			want: "Embedded",
		},
		{
			name: "synthesized placeholder",
			rec:  model.FactionRecord{FactionID: 7},
			want: "Faction 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.rec, tt.meta))
		})
	}
}

func TestNormalizeKindSelection(t *testing.T) {
	tests := []struct {
		name string
		rec  model.FactionRecord
		raw  model.RawProgress
		want model.ProgressKind
	}{
		{
			name: "named rank means friendship",
			raw:  model.RawProgress{RankName: "Best Friend", RenownLevel: 3, StandingID: 5},
			want: model.KindFriendship,
		},
		{
			name: "renown level means renown",
			raw:  model.RawProgress{RenownLevel: 4},
			want: model.KindRenown,
		},
		{
			name: "major faction record forces renown even at level zero",
			rec:  model.FactionRecord{IsMajorFaction: true},
			raw:  model.RawProgress{CurrentValue: 300},
			want: model.KindRenown,
		},
		{
			name: "renown-flagged record forces renown",
			rec:  model.FactionRecord{IsRenown: true},
			raw:  model.RawProgress{},
			want: model.KindRenown,
		},
		{
			name: "everything else is classic standing",
			raw:  model.RawProgress{StandingID: 6, CurrentValue: 100},
			want: model.KindStanding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.rec, tt.raw).Kind)
		})
	}
}

func TestNormalizeParagon(t *testing.T) {
	raw := model.RawProgress{
		StandingID:           8,
		ParagonValue:         4200,
		ParagonThreshold:     10000,
		ParagonRewardPending: true,
	}

	snap := Normalize(model.FactionRecord{}, raw)
	require.NotNil(t, snap.Paragon)
	assert.Equal(t, 4200, snap.Paragon.Value)
	assert.True(t, snap.Paragon.RewardPending)

	// A paragon value without a threshold is scanner noise and is dropped.
	snap = Normalize(model.FactionRecord{}, model.RawProgress{ParagonValue: 4200})
	assert.Nil(t, snap.Paragon)
}
