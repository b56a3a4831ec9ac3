package assets

import (
	"testing"

	"github.com/automoto/summit/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	require.Contains(t, names, "summit")

	level, err := leveldata.Load(FS(), "levels/summit.tmx")
	require.NoError(t, err)
	assert.Equal(t, 480, level.MapWidth)
	assert.Equal(t, 240, level.MapHeight)
	assert.Equal(t, leveldata.Point{X: 24, Y: 216}, level.Spawn)
	assert.NotEmpty(t, level.Terrain)
	assert.NotEmpty(t, level.Platforms)
	assert.Len(t, level.SnowPiles, 2)
	assert.Len(t, level.Springs, 1)
	assert.Len(t, level.Hazards, 2)
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := LoadLevel("everest")
	assert.ErrorContains(t, err, `level "everest" not found`)
}
