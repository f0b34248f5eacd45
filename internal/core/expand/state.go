// Package expand defines the composite keys and default rules for the
// dashboard's collapsible nodes. The renderer owns no expand state of its
// own: it asks this package, and every toggle triggers a full view-model
// rebuild upstream.
package expand

import (
	"strconv"
	"strings"

	"github.com/ryvens/repdash/internal/core/model"
)

// Mode tags. Keys from different view modes never collide.
const (
	ModeFiltered     = "filtered"
	ModePerCharacter = "char"
)

// Key joins identifying parts into a composite node key. Keys are built from
// stable identity (mode tag + scope + name/ID), never from array positions,
// because tree contents can shrink or grow between renders.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

// SectionKey addresses a top-level section of the filtered board.
func SectionKey(mode, section string) string {
	return Key(mode, "section", section)
}

// CharacterKey addresses one character node of the per-character board.
func CharacterKey(mode, characterKey string) string {
	return Key(mode, "character", characterKey)
}

// HeaderKey addresses a canonical header within a scope (a section name or
// a character key).
func HeaderKey(mode, scope, header string) string {
	return Key(mode, scope, "header", header)
}

// FactionKey addresses a parent faction with nested children.
func FactionKey(mode, scope string, factionID int) string {
	return Key(mode, scope, "faction", strconv.Itoa(factionID))
}

// State is the explicit expand/collapse override map. Toggling one key never
// implicitly changes another; nodes without an override fall back to the
// default rules below.
type State struct {
	overrides map[string]bool
}

// NewState creates an empty State.
func NewState() *State {
	return &State{overrides: make(map[string]bool)}
}

// IsExpanded resolves a node: stored override if present, else the default.
func (s *State) IsExpanded(key string, def bool) bool {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	return def
}

// Toggle flips a node relative to its current resolved value.
func (s *State) Toggle(key string, def bool) {
	s.overrides[key] = !s.IsExpanded(key, def)
}

// Set stores an explicit value for a node.
func (s *State) Set(key string, expanded bool) {
	s.overrides[key] = expanded
}

// Reset drops every override, returning all nodes to their defaults.
func (s *State) Reset() {
	s.overrides = make(map[string]bool)
}

// Defaults resolves the expanded-state defaults used when no override is
// stored.
type Defaults struct {
	ActiveCharacterKey string
}

// Character defaults expanded iff the character is the active one or has at
// least one faction with an unclaimed reward.
func (d Defaults) Character(c model.CharacterRef, hasPendingReward bool) bool {
	return c.Key == d.ActiveCharacterKey || hasPendingReward
}

// Section covers the "Account-Wide" and "Character-Based" roots.
func (d Defaults) Section() bool {
	return false
}

// Header covers canonical header nodes.
func (d Defaults) Header() bool {
	return true
}

// ParentFaction covers factions that carry nested children.
func (d Defaults) ParentFaction() bool {
	return true
}
