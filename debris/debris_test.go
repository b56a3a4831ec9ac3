package debris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		Gravity:    600,
		Radius:     1,
		Mass:       1,
		Elasticity: 0.3,
		Friction:   0.8,
		Speed:      80,
		Life:       1,
		MaxChunks:  16,
	}
}

func TestBurstSpawnsAndExpires(t *testing.T) {
	f := NewField(testSettings(), 1)
	f.Burst(50, 50, 6)
	require.Len(t, f.Chunks(), 6)

	for _, c := range f.Chunks() {
		x, y := c.Position()
		assert.Equal(t, 50.0, x)
		assert.Equal(t, 50.0, y)
		assert.Equal(t, 1.0, c.Fade())
	}

	f.Step(1.0 / 60)
	for _, c := range f.Chunks() {
		_, y := c.Position()
		assert.Less(t, y, 50.0, "chunks are launched upwards")
		assert.Less(t, c.Fade(), 1.0)
	}

	for i := 0; i < 60; i++ {
		f.Step(1.0 / 60)
	}
	assert.Empty(t, f.Chunks())
}

func TestBurstIsCapped(t *testing.T) {
	f := NewField(testSettings(), 2)
	f.Burst(0, 0, 10)
	first := f.Chunks()[9]
	f.Burst(0, 0, 10)

	assert.Len(t, f.Chunks(), 16)
	assert.Contains(t, f.Chunks(), first)
}

func TestChunksRestOnTerrain(t *testing.T) {
	s := testSettings()
	s.Life = 10
	f := NewField(s, 3)
	f.AddTerrain("floor", -1000, 100, 2200, 16)
	f.Burst(100, 90, 8)

	for i := 0; i < 180; i++ {
		f.Step(1.0 / 60)
	}
	require.Len(t, f.Chunks(), 8)
	for _, c := range f.Chunks() {
		_, y := c.Position()
		assert.Less(t, y, 100.0+s.Radius, "resting on top of the floor")
	}

	f.RemoveTerrain("floor")
	f.RemoveTerrain("missing")
	for i := 0; i < 60; i++ {
		f.Step(1.0 / 60)
	}
	for _, c := range f.Chunks() {
		_, y := c.Position()
		assert.Greater(t, y, 100.0, "falls once the floor is gone")
	}
}
