// Package account loads the exported game-client snapshot that feeds an
// aggregation pass: roster, raw faction records, display metadata, and the
// canonical header order.
package account

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/util"
)

// File is the on-disk snapshot document. Faction maps are keyed by decimal
// faction ID because JSON object keys are strings.
type File struct {
	ExportedAt      int64                            `json:"exportedAt"`
	ActiveCharacter string                           `json:"activeCharacter"`
	Characters      []model.CharacterRef             `json:"characters"`
	Factions        map[string]model.FactionRecord   `json:"factions"`
	Metadata        map[string]model.FactionMetadata `json:"metadata,omitempty"`
	Headers         []model.CanonicalHeader          `json:"headers"`
}

// Store is a point-in-time, read-only view of one snapshot file. It serves
// as record store, metadata catalog, and roster for a pass; a new Store is
// loaded for every refresh, so a pass never sees mid-flight mutation.
type Store struct {
	path      string
	active    string
	roster    []model.CharacterRef
	records   map[int]model.FactionRecord
	metadata  map[int]model.FactionMetadata
	headers   []model.CanonicalHeader
	loadedAt  int64
	exportedAt int64
}

// Load reads and decodes a snapshot file.
func Load(path string) (*Store, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var doc File
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	s := &Store{
		path:       path,
		active:     doc.ActiveCharacter,
		roster:     doc.Characters,
		records:    make(map[int]model.FactionRecord, len(doc.Factions)),
		metadata:   make(map[int]model.FactionMetadata, len(doc.Metadata)),
		headers:    doc.Headers,
		loadedAt:   time.Now().Unix(),
		exportedAt: doc.ExportedAt,
	}

	for key, rec := range doc.Factions {
		id, err := strconv.Atoi(key)
		if err != nil {
			util.LogWarnf("Skipping faction record with non-numeric key %q", key)
			continue
		}
		if rec.FactionID == 0 {
			rec.FactionID = id
		}
		s.records[id] = rec
	}

	for key, meta := range doc.Metadata {
		id, err := strconv.Atoi(key)
		if err != nil {
			util.LogWarnf("Skipping faction metadata with non-numeric key %q", key)
			continue
		}
		s.metadata[id] = meta
	}

	util.LogDebugf("Loaded snapshot %s: %d characters, %d factions, %d headers in %v",
		path, len(s.roster), len(s.records), len(s.headers), time.Since(start))

	return s, nil
}

// GetAll returns the raw faction records keyed by faction ID.
func (s *Store) GetAll() map[int]model.FactionRecord {
	return s.records
}

// Get returns best-effort display metadata for a faction.
func (s *Store) Get(factionID int) (model.FactionMetadata, bool) {
	meta, ok := s.metadata[factionID]
	return meta, ok
}

// CanonicalHeaders returns the externally supplied header order.
func (s *Store) CanonicalHeaders() []model.CanonicalHeader {
	return s.headers
}

// Characters returns the roster in its exported order.
func (s *Store) Characters() []model.CharacterRef {
	return s.roster
}

// ActiveCharacterKey returns the key of the currently online character.
func (s *Store) ActiveCharacterKey() string {
	return s.active
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// ExportedAt returns the snapshot's export timestamp, or the load time when
// the exporter did not stamp one.
func (s *Store) ExportedAt() int64 {
	if s.exportedAt > 0 {
		return s.exportedAt
	}
	return s.loadedAt
}
