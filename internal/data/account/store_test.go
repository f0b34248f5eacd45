package account

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repdash-export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFullDocument(t *testing.T) {
	path := writeSnapshot(t, `{
		"exportedAt": 1756200000,
		"activeCharacter": "Aria-Proudmoore",
		"characters": [
			{"key": "Aria-Proudmoore", "name": "Aria", "classToken": "MAGE", "level": 80},
			{"key": "Bren-Proudmoore", "name": "Bren", "classToken": "WARRIOR", "level": 70}
		],
		"factions": {
			"2045": {
				"name": "Valdrakken Accord",
				"isRenown": true,
				"chars": {
					"Aria-Proudmoore": {"renownLevel": 8, "currentValue": 500, "maxValue": 2500},
					"Bren-Proudmoore": {"renownLevel": "?", "currentValue": 0, "maxValue": 2500}
				}
			},
			"9001": {
				"factionID": 9001,
				"name": "Brood of Nozdormu",
				"isAccountWide": true,
				"value": {"standingID": 8, "currentValue": 999, "maxValue": 1000}
			}
		},
		"metadata": {
			"2045": {"name": "Valdrakken Accord", "icon": 4687628}
		},
		"headers": [
			{"name": "Dragonflight", "factionIDs": [2045]},
			{"name": "Classic", "factionIDs": [9001]}
		]
	}`)

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.Equal(t, int64(1756200000), store.ExportedAt())
	assert.Equal(t, "Aria-Proudmoore", store.ActiveCharacterKey())
	require.Len(t, store.Characters(), 2)
	assert.Equal(t, "MAGE", store.Characters()[0].ClassToken)

	records := store.GetAll()
	require.Len(t, records, 2)

	valdrakken := records[2045]
	assert.Equal(t, 2045, valdrakken.FactionID, "faction ID backfilled from the map key")
	assert.True(t, valdrakken.IsRenown)
	assert.Equal(t, 8, valdrakken.Chars["Aria-Proudmoore"].RenownLevel.Int())
	assert.Equal(t, 0, valdrakken.Chars["Bren-Proudmoore"].RenownLevel.Int(),
		"string sentinel normalizes to zero")

	brood := records[9001]
	require.NotNil(t, brood.Value)
	assert.Equal(t, 8, brood.Value.StandingID)

	meta, ok := store.Get(2045)
	require.True(t, ok)
	assert.Equal(t, 4687628, meta.Icon)
	_, ok = store.Get(9001)
	assert.False(t, ok)

	headers := store.CanonicalHeaders()
	require.Len(t, headers, 2)
	assert.Equal(t, "Dragonflight", headers[0].Name)
}

func TestLoadSkipsNonNumericKeys(t *testing.T) {
	path := writeSnapshot(t, `{
		"characters": [],
		"factions": {
			"42": {"name": "Kept"},
			"bogus": {"name": "Dropped"}
		},
		"metadata": {
			"42": {"name": "Kept"},
			"also-bogus": {"name": "Dropped"}
		},
		"headers": []
	}`)

	store, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, store.GetAll(), 1)
	assert.Equal(t, "Kept", store.GetAll()[42].Name)
	_, ok := store.Get(42)
	assert.True(t, ok)
}

func TestLoadMissingExportedAtFallsBackToLoadTime(t *testing.T) {
	path := writeSnapshot(t, `{"characters": [], "factions": {}, "headers": []}`)

	store, err := Load(path)
	require.NoError(t, err)
	assert.Greater(t, store.ExportedAt(), int64(0),
		"unstamped exports report the load time instead")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read snapshot")

	path := writeSnapshot(t, `{not json`)
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode snapshot")
}
