package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroundNeedsFiveStableTicks(t *testing.T) {
	var g Ground
	for i := 1; i <= 4; i++ {
		assert.False(t, g.Observe(0), "observation %d", i)
	}
	assert.True(t, g.Observe(0))
	assert.Equal(t, 5, g.Counter())

	// The counter saturates.
	g.Observe(0)
	assert.Equal(t, 5, g.Counter())
}

func TestGroundIgnoresSubPrecisionJitter(t *testing.T) {
	g := Ground{counter: 5, Grounded: true}
	assert.True(t, g.Observe(0.04))
	assert.True(t, g.Observe(-0.03))
	assert.Equal(t, 5, g.Counter())
}

func TestGroundHysteresis(t *testing.T) {
	g := Ground{counter: 5, lastY: 1000, Grounded: true}

	// A single glitch and the return from it cost two steps.
	assert.True(t, g.Observe(100.5))
	assert.True(t, g.Observe(100))
	assert.Equal(t, 3, g.Counter())

	// Climbing back to five without the flag ever dropping.
	g.Observe(100)
	g.Observe(100)
	assert.Equal(t, 5, g.Counter())

	// Sustained motion clears the flag once the counter is below two.
	assert.True(t, g.Observe(101))
	assert.True(t, g.Observe(102))
	assert.True(t, g.Observe(103))
	assert.False(t, g.Observe(104))
	assert.Equal(t, 1, g.Counter())

	// Stable again: the flag only returns at five.
	for i := 0; i < 3; i++ {
		assert.False(t, g.Observe(104))
	}
	assert.True(t, g.Observe(104))
}

func TestGroundCounterFloor(t *testing.T) {
	var g Ground
	for i := 1; i <= 10; i++ {
		g.Observe(float64(i))
	}
	assert.Equal(t, 0, g.Counter())
	assert.False(t, g.Grounded)
}

type recordingRays struct {
	fakeRays
	origins [][2]float64
}

func (r *recordingRays) CastRay(ox, oy, dx, dy, maxDist float64, kind Kind) (Hit, bool) {
	r.origins = append(r.origins, [2]float64{ox, oy})
	return r.fakeRays.CastRay(ox, oy, dx, dy, maxDist, kind)
}

func TestDetectWall(t *testing.T) {
	params := DefaultParams()

	assert.Equal(t, NoWall, DetectWall(&fakeRays{}, 0, 0, params))
	assert.Equal(t, LeftNext, DetectWall(&fakeRays{left: true}, 0, 0, params))
	assert.Equal(t, RightNext, DetectWall(&fakeRays{right: true}, 0, 0, params))
	assert.Equal(t, LeftNext, DetectWall(&fakeRays{left: true, right: true}, 0, 0, params),
		"left is checked first")
	assert.Equal(t, NoWall, DetectWall(nil, 0, 0, params))
}

func TestDetectWallProbesOutsideTheBody(t *testing.T) {
	params := DefaultParams()
	rays := &recordingRays{}

	DetectWall(rays, 10, 20, params)
	reach := params.HalfWidth + params.WallProbeGap
	assert.Equal(t, [][2]float64{{10 - reach, 20}, {10 + reach, 20}}, rays.origins)
}
