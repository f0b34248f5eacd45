package model

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// RawProgress is the wire form of one progress reading as the game-client
// exporter writes it. It is a loose bag of optional fields; the snapshot
// builder turns it into a typed ProgressSnapshot.
type RawProgress struct {
	StandingID           int           `json:"standingID,omitempty"`
	CurrentValue         int           `json:"currentValue"`
	MaxValue             int           `json:"maxValue"`
	RenownLevel          FlexibleLevel `json:"renownLevel,omitempty"`
	RenownMaxLevel       FlexibleLevel `json:"renownMaxLevel,omitempty"`
	RankName             string        `json:"rankName,omitempty"`
	ParagonValue         int           `json:"paragonValue,omitempty"`
	ParagonThreshold     int           `json:"paragonThreshold,omitempty"`
	ParagonRewardPending bool          `json:"paragonRewardPending,omitempty"`
	IsWatched            bool          `json:"isWatched,omitempty"`
	AtWarWith            bool          `json:"atWarWith,omitempty"`
	LastUpdated          int64         `json:"lastUpdated,omitempty"`
}

// FlexibleLevel tolerates exporter versions that write renown levels as a
// display string ("Renown 12", "?") instead of a number. Non-numeric values
// normalize to 0 so the comparator sees a consistent scale.
type FlexibleLevel int

func (fl *FlexibleLevel) UnmarshalJSON(data []byte) error {
	var n int
	if err := sonic.Unmarshal(data, &n); err == nil {
		*fl = FlexibleLevel(n)
		return nil
	}

	var s string
	if err := sonic.Unmarshal(data, &s); err == nil {
		*fl = 0
		return nil
	}

	return fmt.Errorf("level must be a number or a string sentinel")
}

// Int returns the normalized numeric level.
func (fl FlexibleLevel) Int() int {
	return int(fl)
}

// FactionRecord is the raw per-faction record supplied by the record store.
// Exactly one of Value/Chars is populated, selected by IsAccountWide.
type FactionRecord struct {
	FactionID         int                    `json:"factionID"`
	Name              string                 `json:"name"`
	Icon              int                    `json:"icon,omitempty"`
	IsAccountWide     bool                   `json:"isAccountWide"`
	IsRenown          bool                   `json:"isRenown"`
	IsMajorFaction    bool                   `json:"isMajorFaction"`
	IsHeaderWithRep   bool                   `json:"isHeaderWithRep"`
	ParentHeaderChain []string               `json:"parentHeaderChain,omitempty"`
	Value             *RawProgress           `json:"value,omitempty"`
	Chars             map[string]RawProgress `json:"chars,omitempty"`
}

// FactionMetadata is best-effort display metadata from the catalog. Zero
// value means "nothing known"; the engine falls back to record-embedded
// fields, then to synthesized ones.
type FactionMetadata struct {
	Name              string   `json:"name,omitempty"`
	Icon              int      `json:"icon,omitempty"`
	IsHeaderWithRep   bool     `json:"isHeaderWithRep,omitempty"`
	ParentHeaderChain []string `json:"parentHeaderChain,omitempty"`
}

// CanonicalHeader is one entry of the externally supplied header order.
// Factions absent from every canonical header are never shown.
type CanonicalHeader struct {
	Name       string `json:"name"`
	FactionIDs []int  `json:"factionIDs"`
}
