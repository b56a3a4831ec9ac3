package movement

import "math"

const (
	groundCounterMax = 5
	groundEnterAt    = 5
	groundExitBelow  = 2
)

// Ground debounces "resting on something" from vertical position stability.
type Ground struct {
	counter  int
	lastY    float64
	Grounded bool
}

// Observe feeds the body's vertical position for this tick and returns the
// updated flag. Positions are compared at one decimal of precision.
func (g *Ground) Observe(y float64) bool {
	rounded := math.Round(y * 10)
	if rounded == g.lastY {
		g.counter++
	} else {
		g.counter--
	}
	g.counter = max(0, min(groundCounterMax, g.counter))

	if g.counter == groundEnterAt && !g.Grounded {
		g.Grounded = true
	} else if g.counter < groundExitBelow && g.Grounded {
		g.Grounded = false
	}

	g.lastY = rounded
	return g.Grounded
}

// Counter exposes the hysteresis counter for debug overlays.
func (g Ground) Counter() int {
	return g.counter
}

// Kind classifies a collider the controller cares about.
type Kind int

const (
	KindUnknown Kind = iota
	KindTerrain
	KindSnowPile
	KindHazard
	KindSpring
)

func (k Kind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindSnowPile:
		return "snowpile"
	case KindHazard:
		return "hazard"
	case KindSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// Collider identifies a physics object. Ref is the host's handle and is only
// compared for identity.
type Collider struct {
	Ref  any
	Kind Kind
}

// Hit is the nearest collider along a ray.
type Hit struct {
	Collider Collider
	Distance float64
}

// RayCaster answers short ray queries against the physics host, returning
// only colliders of the given kind.
type RayCaster interface {
	CastRay(ox, oy, dx, dy, maxDist float64, kind Kind) (Hit, bool)
}

// DetectWall casts one ray to each side of the body center. Left is checked
// first and wins when both sides touch terrain.
func DetectWall(rays RayCaster, x, y float64, p Params) Adjacency {
	if rays == nil {
		return NoWall
	}
	reach := p.HalfWidth + p.WallProbeGap
	if _, ok := rays.CastRay(x-reach, y, -1, 0, p.WallProbeLength, KindTerrain); ok {
		return LeftNext
	}
	if _, ok := rays.CastRay(x+reach, y, 1, 0, p.WallProbeLength, KindTerrain); ok {
		return RightNext
	}
	return NoWall
}
