// Package formatter turns the board tree into machine-readable output for
// the export command.
package formatter

import (
	"github.com/ryvens/repdash/internal/core/model"
)

// Row is one faction flattened out of the board tree. Section and Header
// carry the tree position; Parent is empty for top-level factions.
type Row struct {
	Section          string `json:"section"`
	Header           string `json:"header"`
	Parent           string `json:"parent,omitempty"`
	FactionID        int    `json:"factionID"`
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	Standing         string `json:"standing,omitempty"`
	RenownLevel      int    `json:"renownLevel,omitempty"`
	RankName         string `json:"rankName,omitempty"`
	CurrentValue     int    `json:"currentValue"`
	MaxValue         int    `json:"maxValue"`
	ParagonValue     int    `json:"paragonValue,omitempty"`
	ParagonThreshold int    `json:"paragonThreshold,omitempty"`
	RewardPending    bool   `json:"rewardPending,omitempty"`
	AccountWide      bool   `json:"accountWide"`
	BestCharacter    string `json:"bestCharacter,omitempty"`
	Contributors     int    `json:"contributors"`
}

// Formatter writes rows in one output format.
type Formatter interface {
	Format(rows []Row) error
}

// Flatten walks the filtered board depth-first and emits one row per
// faction, children directly after their parent.
func Flatten(b *model.FilteredBoard) []Row {
	var rows []Row
	for _, section := range b.Sections {
		for _, group := range section.Groups {
			for _, entry := range group.Entries {
				rows = append(rows, rowOf(section.Name, group.Name, "", entry.Faction))
				for _, child := range entry.Children {
					rows = append(rows, rowOf(section.Name, group.Name, entry.Faction.Name, child))
				}
			}
		}
	}
	return rows
}

func rowOf(section, header, parent string, f *model.AggregatedFaction) Row {
	row := Row{
		Section:       section,
		Header:        header,
		Parent:        parent,
		FactionID:     f.FactionID,
		Name:          f.Name,
		Kind:          f.Snapshot.Kind.String(),
		CurrentValue:  f.Snapshot.CurrentValue,
		MaxValue:      f.Snapshot.MaxValue,
		AccountWide:   f.IsAccountWide,
		Contributors:  len(f.Contributors),
		RewardPending: f.HasPendingReward(),
	}

	switch f.Snapshot.Kind {
	case model.KindRenown:
		row.RenownLevel = f.Snapshot.RenownLevel
	case model.KindFriendship:
		row.RankName = f.Snapshot.RankName
	default:
		row.Standing = model.StandingName(f.Snapshot.StandingID)
	}

	if f.Snapshot.HasParagon() {
		row.ParagonValue = f.Snapshot.Paragon.Value
		row.ParagonThreshold = f.Snapshot.Paragon.Threshold
	}

	if !f.IsAccountWide {
		row.BestCharacter = f.BestCharacter.Name
	}

	return row
}
