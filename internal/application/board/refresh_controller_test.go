package board

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `{
	"exportedAt": 1756200000,
	"activeCharacter": "Aria-Proudmoore",
	"characters": [{"key": "Aria-Proudmoore", "name": "Aria", "level": 80}],
	"factions": {
		"2045": {
			"name": "Valdrakken Accord",
			"isRenown": true,
			"chars": {"Aria-Proudmoore": {"renownLevel": 8, "currentValue": 500, "maxValue": 2500}}
		}
	},
	"headers": [{"name": "Dragonflight", "factionIDs": [2045]}]
}`

func writeTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0644))
	return path
}

func TestRefreshThrottling(t *testing.T) {
	rc := NewRefreshController(writeTestSnapshot(t), time.Hour, nil)

	result, refreshed, err := rc.Refresh("")
	require.NoError(t, err)
	require.True(t, refreshed, "first refresh always runs")
	require.NotNil(t, result)
	assert.Equal(t, "Aria-Proudmoore", result.ActiveCharacterKey)
	assert.Equal(t, int64(1756200000), result.ExportedAt)

	result, refreshed, err = rc.Refresh("")
	require.NoError(t, err)
	assert.False(t, refreshed, "second refresh inside the interval is dropped")
	assert.Nil(t, result)
}

func TestForceRefreshIgnoresInterval(t *testing.T) {
	rc := NewRefreshController(writeTestSnapshot(t), time.Hour, nil)

	_, _, err := rc.Refresh("")
	require.NoError(t, err)

	result, err := rc.ForceRefresh("")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Filtered)
	assert.Len(t, result.PerCharacter, 1)
}

func TestRefreshZeroIntervalNeverThrottles(t *testing.T) {
	rc := NewRefreshController(writeTestSnapshot(t), 0, nil)

	for i := 0; i < 3; i++ {
		_, refreshed, err := rc.Refresh("")
		require.NoError(t, err)
		assert.True(t, refreshed)
	}
}

func TestRefreshLoadError(t *testing.T) {
	rc := NewRefreshController(filepath.Join(t.TempDir(), "missing.json"), 0, nil)

	_, refreshed, err := rc.Refresh("")
	require.Error(t, err)
	assert.False(t, refreshed)
	assert.Contains(t, err.Error(), "failed to load snapshot")
}
