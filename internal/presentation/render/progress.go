package render

import (
	"fmt"
	"strings"

	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/util"
)

// FormatProgress renders a snapshot's progress as text, shaped by its kind.
// A paragon track appends its own segment on top of the primary one.
func FormatProgress(s model.ProgressSnapshot) string {
	var text string
	switch s.Kind {
	case model.KindRenown:
		if s.RenownMaxLevel > 0 {
			text = fmt.Sprintf("Renown %d/%d", s.RenownLevel, s.RenownMaxLevel)
		} else {
			text = fmt.Sprintf("Renown %d", s.RenownLevel)
		}
	case model.KindFriendship:
		text = s.RankName
	default:
		text = model.StandingName(s.StandingID)
	}

	if s.MaxValue > 0 {
		text += fmt.Sprintf(" %s/%s", util.FormatNumber(s.CurrentValue), util.FormatNumber(s.MaxValue))
	}

	if s.HasParagon() {
		text += fmt.Sprintf(" · Paragon %s/%s",
			util.FormatNumber(s.Paragon.Value), util.FormatNumber(s.Paragon.Threshold))
	}

	return text
}

// ProgressBar draws a fill bar for the snapshot. Paragon progress takes
// precedence since it is the live track once base progress is maxed.
func ProgressBar(s model.ProgressSnapshot, width int) string {
	if width < 4 {
		return ""
	}

	current, max := s.CurrentValue, s.MaxValue
	if s.HasParagon() {
		current, max = s.Paragon.Value, s.Paragon.Threshold
	}

	var ratio float64
	if max > 0 {
		ratio = float64(current) / float64(max)
	} else {
		ratio = 1 // capped track with no remaining progress
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
