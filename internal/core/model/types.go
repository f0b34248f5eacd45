package model

// CharacterRef identifies one character on the account. Key is the stable
// "Name-Realm" identity; everything else is display data.
type CharacterRef struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	ClassToken string `json:"classToken,omitempty"`
	Level      int    `json:"level,omitempty"`
}

// ProgressKind distinguishes the primary progress representation a faction
// uses. Paragon is not a kind: it is an orthogonal bonus track that can sit
// on top of any of these.
type ProgressKind int

const (
	KindStanding ProgressKind = iota
	KindRenown
	KindFriendship
)

func (k ProgressKind) String() string {
	switch k {
	case KindStanding:
		return "standing"
	case KindRenown:
		return "renown"
	case KindFriendship:
		return "friendship"
	default:
		return "unknown"
	}
}

// Standing identifiers for the classic 8-tier scale
const (
	StandingHated      = 1
	StandingHostile    = 2
	StandingUnfriendly = 3
	StandingNeutral    = 4
	StandingFriendly   = 5
	StandingHonored    = 6
	StandingRevered    = 7
	StandingExalted    = 8
)

// StandingName returns the display label for a classic standing ID.
func StandingName(standingID int) string {
	switch standingID {
	case StandingHated:
		return "Hated"
	case StandingHostile:
		return "Hostile"
	case StandingUnfriendly:
		return "Unfriendly"
	case StandingNeutral:
		return "Neutral"
	case StandingFriendly:
		return "Friendly"
	case StandingHonored:
		return "Honored"
	case StandingRevered:
		return "Revered"
	case StandingExalted:
		return "Exalted"
	default:
		return "Unknown"
	}
}

// Paragon is the repeating bonus-reward track that opens once a faction's
// base progress is maxed.
type Paragon struct {
	Value         int  `json:"value"`
	Threshold     int  `json:"threshold"`
	RewardPending bool `json:"rewardPending"`
}

// ProgressSnapshot is one character's normalized progress with a single
// faction at a point in time. Exactly one primary representation is
// meaningful, selected by Kind; Paragon may co-exist with any of them.
type ProgressSnapshot struct {
	Kind           ProgressKind
	StandingID     int    // Kind == KindStanding
	RenownLevel    int    // Kind == KindRenown
	RenownMaxLevel int    // Kind == KindRenown, 0 when the track is uncapped
	RankName       string // Kind == KindFriendship
	CurrentValue   int
	MaxValue       int
	Paragon        *Paragon
	IsWatched      bool
	AtWarWith      bool
	LastUpdated    int64 // Unix timestamp
}

// HasParagon reports whether the snapshot carries a comparable paragon track.
// Both value and threshold must be present; a bare value is scanner noise.
func (p ProgressSnapshot) HasParagon() bool {
	return p.Paragon != nil && p.Paragon.Threshold > 0
}

// HasPendingReward reports whether an unclaimed paragon reward is waiting.
func (p ProgressSnapshot) HasPendingReward() bool {
	return p.Paragon != nil && p.Paragon.RewardPending
}

// RenownOrZero returns the renown level, treating every non-renown kind as 0.
func (p ProgressSnapshot) RenownOrZero() int {
	if p.Kind != KindRenown {
		return 0
	}
	return p.RenownLevel
}

// StandingOrZero returns the classic standing ID, treating every
// non-standing kind as 0.
func (p ProgressSnapshot) StandingOrZero() int {
	if p.Kind != KindStanding {
		return 0
	}
	return p.StandingID
}

// ParagonValueOrZero returns the paragon value, or 0 when no comparable
// paragon track exists.
func (p ProgressSnapshot) ParagonValueOrZero() int {
	if !p.HasParagon() {
		return 0
	}
	return p.Paragon.Value
}

// FileEvent represents a snapshot file change noticed by the watcher.
type FileEvent struct {
	Path      string
	Operation string
}
