// Package board runs the aggregation pipeline and holds the dashboard's
// application state.
package board

import (
	"sort"
	"strings"

	"github.com/ryvens/repdash/internal/core/aggregate"
	"github.com/ryvens/repdash/internal/core/grouping"
	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/core/progress"
	"github.com/ryvens/repdash/internal/util"
)

// RecordStore supplies raw per-faction records for one pass.
type RecordStore interface {
	GetAll() map[int]model.FactionRecord
}

// MetadataCatalog supplies best-effort display metadata and the canonical
// header order.
type MetadataCatalog interface {
	Get(factionID int) (model.FactionMetadata, bool)
	CanonicalHeaders() []model.CanonicalHeader
}

// Roster supplies the character list and the active character.
type Roster interface {
	Characters() []model.CharacterRef
	ActiveCharacterKey() string
}

// Options tune engine behavior.
type Options struct {
	// NestingExceptions lists faction names that never nest under a parent
	// faction. Nil means the built-in default set.
	NestingExceptions []string

	// DefaultIcon is used when neither catalog nor record carries one.
	DefaultIcon int
}

// Engine performs one full aggregation pass per build call. A pass reads a
// point-in-time view of its collaborators, produces an immutable tree, and
// caches nothing across passes.
type Engine struct {
	store       RecordStore
	catalog     MetadataCatalog
	roster      Roster
	grouper     *grouping.Grouper
	defaultIcon int
}

// NewEngine wires an Engine to its collaborators. opts may be nil.
func NewEngine(store RecordStore, catalog MetadataCatalog, roster Roster, opts *Options) *Engine {
	exceptions := grouping.DefaultNestingExceptions
	defaultIcon := 0
	if opts != nil {
		if opts.NestingExceptions != nil {
			exceptions = opts.NestingExceptions
		}
		defaultIcon = opts.DefaultIcon
	}
	return &Engine{
		store:       store,
		catalog:     catalog,
		roster:      roster,
		grouper:     grouping.NewGrouper(exceptions),
		defaultIcon: defaultIcon,
	}
}

// BuildFiltered aggregates the whole roster, then partitions the result into
// the Account-Wide and Character-Based sections, each grouped independently
// against the canonical header order.
func (e *Engine) BuildFiltered(search string) *model.FilteredBoard {
	factions := e.aggregateAll(search)

	accountWide := make(map[int]*model.AggregatedFaction)
	characterBased := make(map[int]*model.AggregatedFaction)
	for id, f := range factions {
		if f.IsAccountWide {
			accountWide[id] = f
		} else {
			characterBased[id] = f
		}
	}

	headers := e.catalog.CanonicalHeaders()
	board := &model.FilteredBoard{
		Sections: []model.BoardSection{
			{Name: model.SectionAccountWide, Groups: e.grouper.Group(headers, accountWide)},
			{Name: model.SectionCharacterBased, Groups: e.grouper.Group(headers, characterBased)},
		},
	}

	util.LogDebugf("Built filtered board: %d factions aggregated (%d account-wide, %d character-based)",
		len(factions), len(accountWide), len(characterBased))

	return board
}

// BuildPerCharacter builds one header tree per character from only that
// character's own readings (account-wide values apply to everyone, so they
// appear on every character). The active character comes first, the rest
// alphabetically by name.
func (e *Engine) BuildPerCharacter(search string) []model.CharacterBoard {
	records := e.store.GetAll()
	headers := e.catalog.CanonicalHeaders()
	roster := e.roster.Characters()
	builder := progress.NewBuilder(roster, search)

	boards := make([]model.CharacterBoard, 0, len(roster))
	for _, char := range orderForDisplay(roster, e.roster.ActiveCharacterKey()) {
		factions := make(map[int]*model.AggregatedFaction)
		for _, id := range sortedIDs(records) {
			rec := records[id]
			meta, _ := e.catalog.Get(id)
			name, pairs := builder.BuildFor(rec, meta, char)
			if agg := e.assemble(rec, meta, name, pairs); agg != nil {
				factions[id] = agg
			}
		}
		boards = append(boards, model.CharacterBoard{
			Character: char,
			Groups:    e.grouper.Group(headers, factions),
		})
	}
	return boards
}

// aggregateAll reduces every record to its best value across the roster.
func (e *Engine) aggregateAll(search string) map[int]*model.AggregatedFaction {
	records := e.store.GetAll()
	builder := progress.NewBuilder(e.roster.Characters(), search)

	factions := make(map[int]*model.AggregatedFaction, len(records))
	for _, id := range sortedIDs(records) {
		rec := records[id]
		meta, _ := e.catalog.Get(id)
		name, pairs := builder.Build(rec, meta)
		if agg := e.assemble(rec, meta, name, pairs); agg != nil {
			factions[id] = agg
		}
	}
	return factions
}

// assemble folds pairs into one AggregatedFaction, or nil when the faction
// has no surviving data.
func (e *Engine) assemble(rec model.FactionRecord, meta model.FactionMetadata, name string, pairs []progress.Pair) *model.AggregatedFaction {
	best, contributors, ok := aggregate.Fold(pairs)
	if !ok {
		return nil
	}

	icon := meta.Icon
	if icon == 0 {
		icon = rec.Icon
	}
	if icon == 0 {
		icon = e.defaultIcon
	}

	chain := meta.ParentHeaderChain
	if len(chain) == 0 {
		chain = rec.ParentHeaderChain
	}

	return &model.AggregatedFaction{
		FactionID:         rec.FactionID,
		Name:              name,
		Icon:              icon,
		IsHeaderWithRep:   rec.IsHeaderWithRep || meta.IsHeaderWithRep,
		ParentHeaderChain: chain,
		Snapshot:          best.Snapshot,
		BestCharacter:     best.Character,
		IsAccountWide:     aggregate.Classify(rec, contributors),
		Contributors:      contributors,
	}
}

// orderForDisplay puts the active character first and sorts the rest
// alphabetically by name, with the key as tiebreaker for stability.
func orderForDisplay(roster []model.CharacterRef, activeKey string) []model.CharacterRef {
	ordered := make([]model.CharacterRef, 0, len(roster))
	var active *model.CharacterRef
	for i := range roster {
		if roster[i].Key == activeKey && active == nil {
			active = &roster[i]
			continue
		}
		ordered = append(ordered, roster[i])
	}
	sort.Slice(ordered, func(i, j int) bool {
		ni, nj := strings.ToLower(ordered[i].Name), strings.ToLower(ordered[j].Name)
		if ni != nj {
			return ni < nj
		}
		return ordered[i].Key < ordered[j].Key
	})
	if active != nil {
		ordered = append([]model.CharacterRef{*active}, ordered...)
	}
	return ordered
}

// sortedIDs returns record keys in ascending order so a pass walks records
// in a reproducible sequence.
func sortedIDs(records map[int]model.FactionRecord) []int {
	ids := make([]int, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
