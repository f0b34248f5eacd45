// Package render draws the board view-model tree as terminal text. It owns
// no state: expand/collapse decisions come from the expand package, and the
// tree is rebuilt upstream before every render.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryvens/repdash/internal/core/expand"
	"github.com/ryvens/repdash/internal/core/model"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
)

// Renderer writes one view mode of a board result.
type Renderer struct {
	state    *expand.State
	defaults expand.Defaults
	width    int
	color    bool
}

// NewRenderer creates a renderer bound to an expand-state map. Width 0 means
// autodetect from the terminal.
func NewRenderer(state *expand.State, defaults expand.Defaults, width int, color bool) *Renderer {
	return &Renderer{
		state:    state,
		defaults: defaults,
		width:    width,
		color:    color,
	}
}

// RenderFiltered writes the aggregated board: the two top-level sections,
// each holding its own header tree.
func (r *Renderer) RenderFiltered(w io.Writer, b *model.FilteredBoard) {
	width := r.maxWidth()
	for _, section := range b.Sections {
		key := expand.SectionKey(expand.ModeFiltered, section.Name)
		expanded := r.state.IsExpanded(key, r.defaults.Section())

		fmt.Fprintf(w, "%s %s\n", r.marker(expanded), r.bold(section.Name))
		if !expanded {
			continue
		}
		r.renderGroups(w, expand.ModeFiltered, section.Name, section.Groups, width, 1)
	}
}

// RenderPerCharacter writes one subtree per character.
func (r *Renderer) RenderPerCharacter(w io.Writer, boards []model.CharacterBoard) {
	width := r.maxWidth()
	for _, cb := range boards {
		key := expand.CharacterKey(expand.ModePerCharacter, cb.Character.Key)
		expanded := r.state.IsExpanded(key, r.defaults.Character(cb.Character, cb.HasPendingReward()))

		label := cb.Character.Name
		if cb.Character.Level > 0 {
			label = fmt.Sprintf("%s (%d)", cb.Character.Name, cb.Character.Level)
		}
		fmt.Fprintf(w, "%s %s\n", r.marker(expanded), r.bold(label))
		if !expanded {
			continue
		}
		r.renderGroups(w, expand.ModePerCharacter, cb.Character.Key, cb.Groups, width, 1)
	}
}

func (r *Renderer) renderGroups(w io.Writer, mode, scope string, groups []model.HeaderGroup, width, depth int) {
	for _, g := range groups {
		key := expand.HeaderKey(mode, scope, g.Name)
		expanded := r.state.IsExpanded(key, r.defaults.Header())

		fmt.Fprintf(w, "%s%s %s\n", indent(depth), r.marker(expanded), r.cyan(g.Name))
		if !expanded {
			continue
		}
		for _, entry := range g.Entries {
			r.renderEntry(w, mode, scope, entry, width, depth+1)
		}
	}
}

func (r *Renderer) renderEntry(w io.Writer, mode, scope string, entry model.HeaderEntry, width, depth int) {
	if len(entry.Children) == 0 {
		fmt.Fprintf(w, "%s%s\n", indent(depth), r.factionLine(entry.Faction, width, depth))
		return
	}

	key := expand.FactionKey(mode, scope, entry.Faction.FactionID)
	expanded := r.state.IsExpanded(key, r.defaults.ParentFaction())

	fmt.Fprintf(w, "%s%s %s\n", indent(depth), r.marker(expanded), r.factionLine(entry.Faction, width, depth))
	if !expanded {
		return
	}
	for _, child := range entry.Children {
		fmt.Fprintf(w, "%s%s\n", indent(depth+1), r.factionLine(child, width, depth+1))
	}
}

// factionLine renders one faction row: padded name, progress text, bar, and
// the best-character attribution.
func (r *Renderer) factionLine(f *model.AggregatedFaction, width, depth int) string {
	nameWidth := width/3 - depth*2
	if nameWidth < 12 {
		nameWidth = 12
	}

	name := f.Name
	if f.Snapshot.AtWarWith {
		name += " ⚔"
	}

	line := padString(name, nameWidth) + "  " + FormatProgress(f.Snapshot)

	barWidth := width - displayWidth(line) - 24
	if barWidth >= 8 {
		line += "  " + ProgressBar(f.Snapshot, barWidth)
	}

	if f.IsAccountWide {
		line += "  " + r.dim("[account]")
	} else if f.BestCharacter.Name != "" {
		line += "  " + r.dim("best: "+f.BestCharacter.Name)
	}
	if f.HasPendingReward() {
		line += " " + r.yellow("★")
	}
	return line
}

// maxWidth picks a rendering width: terminal size with a sane fallback.
func (r *Renderer) maxWidth() int {
	if r.width > 0 {
		return r.width
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 60 {
		return 100
	}
	if termWidth > 140 {
		return 140
	}
	return termWidth
}

func (r *Renderer) marker(expanded bool) string {
	if expanded {
		return markerExpanded
	}
	return markerCollapsed
}

func (r *Renderer) bold(s string) string   { return r.wrap(colorBold, s) }
func (r *Renderer) cyan(s string) string   { return r.wrap(colorCyan, s) }
func (r *Renderer) dim(s string) string    { return r.wrap(colorDim, s) }
func (r *Renderer) yellow(s string) string { return r.wrap(colorYellow, s) }

func (r *Renderer) wrap(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + colorReset
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// displayWidth calculates the actual display width of a string containing
// Unicode characters.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padString pads a string to a specific display width.
func padString(s string, width int) string {
	actual := displayWidth(s)
	if actual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-actual)
}
