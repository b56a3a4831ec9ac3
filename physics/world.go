// Package physics hosts player bodies in a resolv space: gravity, axis
// separated collision against terrain, one-way platforms, contact records
// and short ray queries for the movement controller.
package physics

import (
	"math"

	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
)

const (
	// contactSlop is how close two boxes must be to count as touching.
	contactSlop = 0.5
	// platformLip is how far below a platform's top the feet may be and
	// still land on it.
	platformLip = 4.0
	// minProbe keeps probe boxes from collapsing to zero size.
	minProbe = 0.01
)

var (
	blockingTags = []string{tags.ResolvSolid, tags.ResolvSnowPile}
	landingTags  = []string{tags.ResolvSolid, tags.ResolvSnowPile, tags.ResolvPlatform}
	contactTags  = []string{
		tags.ResolvSolid, tags.ResolvPlatform, tags.ResolvSnowPile,
		tags.ResolvHazard, tags.ResolvSpring,
	}
)

// World owns the resolv space and the dynamic bodies moving in it.
type World struct {
	Space *resolv.Space

	Gravity float64 // px/s²
	MaxFall float64 // px/s

	bodies []*Body
	probe  *resolv.Object
}

// NewWorld creates a space of the given size in pixels, bucketed in cells of
// cellSize pixels.
func NewWorld(width, height, cellSize int, gravity, maxFall float64) *World {
	w := &World{
		Space:   resolv.NewSpace(width, height, cellSize, cellSize),
		Gravity: gravity,
		MaxFall: maxFall,
		probe:   resolv.NewObject(0, 0, minProbe, minProbe),
	}
	w.Space.Add(w.probe)
	return w
}

// AddStatic adds an immovable collider and returns it.
func (w *World) AddStatic(x, y, width, height float64, objTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, objTags...)
	w.Space.Add(obj)
	return obj
}

// RemoveObject takes a static collider out of the space. Bodies touching it
// report the contact as stopped on the next Step.
func (w *World) RemoveObject(obj *resolv.Object) {
	if obj == nil {
		return
	}
	w.Space.Remove(obj)
}

// AddBody spawns a dynamic box whose center is at x, y.
func (w *World) AddBody(x, y, width, height, gravityScale float64, objTags ...string) *Body {
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, objTags...)
	b := &Body{Object: obj, scale: gravityScale}
	obj.Data = b
	w.Space.Add(obj)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody takes a body out of the world. Its contacts are discarded.
func (w *World) RemoveBody(b *Body) {
	if b == nil {
		return
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.Space.Remove(b.Object)
	b.touching = nil
}

// Bodies returns the live bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step integrates every body by dt seconds and returns the contacts that
// started or stopped during the step.
func (w *World) Step(dt float64) []movement.Contact {
	var contacts []movement.Contact
	for _, b := range w.bodies {
		b.vy += w.Gravity * b.scale * dt
		b.vy = math.Min(b.vy, w.MaxFall)

		w.moveHorizontal(b, b.vx*dt)
		w.moveVertical(b, b.vy*dt)

		contacts = w.diffContacts(b, contacts)
	}
	return contacts
}

// moveHorizontal stops the body at the first blocking collider in its path.
func (w *World) moveHorizontal(b *Body, dx float64) {
	if dx == 0 {
		return
	}
	obj := b.Object
	if check := obj.Check(dx, 0, blockingTags...); check != nil {
		if block, ok := nearest(check, check.ObjectsByTags(blockingTags...), obj, true); ok {
			dx = check.ContactWithObject(block).X()
			b.vx = 0
		}
	}
	obj.X += dx
	obj.Update()
}

// moveVertical lands the body on solids, snow piles and platforms, and stops
// it under ceilings. Platforms only catch a falling body whose feet are above
// their top.
func (w *World) moveVertical(b *Body, dy float64) {
	obj := b.Object
	b.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, landingTags...)
	if check == nil {
		obj.Y += dy
		obj.Update()
		return
	}

	if dy < 0 {
		if block, ok := nearest(check, check.ObjectsByTags(blockingTags...), obj, false); ok {
			dy = check.ContactWithObject(block).Y()
			b.vy = 0
		}
		obj.Y += dy
		obj.Update()
		return
	}

	if platform, ok := w.landingPlatform(b, check); ok {
		b.OnGround = platform
		dy = check.ContactWithObject(platform).Y()
		b.vy = 0
	} else if block, ok := nearest(check, check.ObjectsByTags(blockingTags...), obj, false); ok {
		b.OnGround = block
		dy = check.ContactWithObject(block).Y()
		b.vy = 0
	}
	// Any landing ends the drop. landingPlatform never returns the ignored one.
	if b.OnGround != nil {
		b.IgnorePlatform = nil
	}
	obj.Y += dy
	obj.Update()
}

func (w *World) landingPlatform(b *Body, check *resolv.Collision) (*resolv.Object, bool) {
	if b.vy < 0 {
		return nil, false
	}
	obj := b.Object
	var best *resolv.Object
	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		if platform == b.IgnorePlatform || !overlapsX(obj, platform) {
			continue
		}
		if obj.Bottom() >= platform.Y+platformLip {
			continue
		}
		if best == nil || platform.Y < best.Y {
			best = platform
		}
	}
	return best, best != nil
}

// nearest picks the candidate the moving object reaches first. Cell based
// checks also report objects that only share a cell, so candidates must
// overlap on the other axis.
func nearest(check *resolv.Collision, candidates []*resolv.Object, obj *resolv.Object, horizontal bool) (*resolv.Object, bool) {
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, c := range candidates {
		var d float64
		if horizontal {
			if !overlapsY(obj, c) {
				continue
			}
			d = math.Abs(check.ContactWithObject(c).X())
		} else {
			if !overlapsX(obj, c) {
				continue
			}
			d = math.Abs(check.ContactWithObject(c).Y())
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != nil
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// KindOf classifies a collider for the movement controller.
func KindOf(obj *resolv.Object) movement.Kind {
	switch {
	case obj == nil:
		return movement.KindUnknown
	case obj.HasTags(tags.ResolvSnowPile):
		return movement.KindSnowPile
	case obj.HasTags(tags.ResolvHazard):
		return movement.KindHazard
	case obj.HasTags(tags.ResolvSpring):
		return movement.KindSpring
	case obj.HasTags(tags.ResolvSolid), obj.HasTags(tags.ResolvPlatform):
		return movement.KindTerrain
	default:
		return movement.KindUnknown
	}
}

func tagsForKind(kind movement.Kind) []string {
	switch kind {
	case movement.KindTerrain:
		return []string{tags.ResolvSolid}
	case movement.KindSnowPile:
		return []string{tags.ResolvSnowPile}
	case movement.KindHazard:
		return []string{tags.ResolvHazard}
	case movement.KindSpring:
		return []string{tags.ResolvSpring}
	default:
		return nil
	}
}
