package physics

import (
	"math"

	"github.com/automoto/summit/movement"
	"github.com/solarlune/resolv"
)

// CastRay returns the nearest collider of the given kind hit by the ray from
// (ox, oy) along (dx, dy) within maxDist. A ray starting inside a collider
// hits it at distance zero.
func (w *World) CastRay(ox, oy, dx, dy, maxDist float64, kind movement.Kind) (movement.Hit, bool) {
	objTags := tagsForKind(kind)
	length := math.Hypot(dx, dy)
	if len(objTags) == 0 || length == 0 || maxDist < 0 {
		return movement.Hit{}, false
	}
	dx, dy = dx/length, dy/length

	ex, ey := ox+dx*maxDist, oy+dy*maxDist
	x, y := math.Min(ox, ex), math.Min(oy, ey)
	candidates := w.query(x, y, math.Abs(ex-ox), math.Abs(ey-oy), objTags)

	var (
		best     *resolv.Object
		bestDist = math.Inf(1)
	)
	for _, o := range candidates {
		if d, ok := rayBox(ox, oy, dx, dy, o); ok && d <= maxDist && d < bestDist {
			best, bestDist = o, d
		}
	}
	if best == nil {
		return movement.Hit{}, false
	}
	return movement.Hit{
		Collider: movement.Collider{Ref: best, Kind: KindOf(best)},
		Distance: bestDist,
	}, true
}

// rayBox is the slab test of a unit ray against an object's box.
func rayBox(ox, oy, dx, dy float64, o *resolv.Object) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	axes := [2][4]float64{
		{ox, dx, o.X, o.X + o.W},
		{oy, dy, o.Y, o.Y + o.H},
	}
	for _, a := range axes {
		origin, dir, lo, hi := a[0], a[1], a[2], a[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin, tmax = math.Max(tmin, t1), math.Min(tmax, t2)
	}
	tmin = math.Max(tmin, 0)
	if tmax < tmin {
		return 0, false
	}
	return tmin, true
}
