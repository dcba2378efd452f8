package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/codeventure/grid"
)

func TestDefaultLevelIsValid(t *testing.T) {
	lvl := Default()
	require.NoError(t, lvl.Validate())

	assert.Equal(t, 12, lvl.Cols)
	assert.Equal(t, 9, lvl.Rows)
	assert.Equal(t, grid.Position{Col: 5, Row: 4}, lvl.Spawn)
	assert.Len(t, lvl.Obstacles, 9)
	assert.Len(t, lvl.Gems, 7)
	assert.Len(t, lvl.Challenges, 3)
}

func TestGemValues(t *testing.T) {
	assert.Equal(t, 10, GemRuby.Value())
	assert.Equal(t, 15, GemEmerald.Value())
	assert.Equal(t, 20, GemSapphire.Value())
	assert.Equal(t, 25, GemGold.Value())
	assert.Equal(t, 50, GemDiamond.Value())

	// Unknown kinds fall back to the ruby value.
	assert.Equal(t, 10, GemKind("opal").Value())
}

func TestValidateRejectsChallengeOnObstacle(t *testing.T) {
	lvl := Default()
	lvl.Challenges[0].Target = lvl.Obstacles[0].Pos

	err := lvl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestValidateRejectsSpawnOnObstacle(t *testing.T) {
	lvl := Default()
	lvl.Spawn = lvl.Obstacles[0].Pos

	assert.Error(t, lvl.Validate())
}

func TestValidateRejectsOutOfBoundsTarget(t *testing.T) {
	lvl := Default()
	lvl.Challenges[1].Target = grid.Position{Col: 40, Row: 2}

	assert.Error(t, lvl.Validate())
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	lvl := &Level{Cols: 0, Rows: 9}
	assert.Error(t, lvl.Validate())
}

func TestLoadFromJSON(t *testing.T) {
	jsonData := `{
		"name": "test_level",
		"cols": 6,
		"rows": 5,
		"spawn": {"col": 1, "row": 1},
		"obstacles": [
			{"col": 3, "row": 2, "kind": "rock"}
		],
		"gems": [
			{"col": 4, "row": 4, "kind": "diamond"}
		],
		"challenges": [
			{"title": "Go", "description": "Reach (4, 4)", "col": 4, "row": 4, "reward": 30}
		]
	}`

	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonData), 0644))

	lvl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test_level", lvl.Name)
	assert.Equal(t, 6, lvl.Cols)
	assert.Equal(t, grid.Position{Col: 1, Row: 1}, lvl.Spawn)
	require.Len(t, lvl.Obstacles, 1)
	assert.Equal(t, grid.ObstacleRock, lvl.Obstacles[0].Kind)
	require.Len(t, lvl.Gems, 1)
	assert.Equal(t, GemDiamond, lvl.Gems[0].Kind)
	require.Len(t, lvl.Challenges, 1)
	assert.Equal(t, 30, lvl.Challenges[0].Reward)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	jsonData := `{
		"name": "broken",
		"cols": 4,
		"rows": 4,
		"spawn": {"col": 0, "row": 0},
		"obstacles": [{"col": 2, "row": 2, "kind": "rock"}],
		"challenges": [
			{"title": "Stuck", "description": "Impossible", "col": 2, "row": 2, "reward": 10}
		]
	}`

	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonData), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
