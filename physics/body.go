package physics

import (
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
)

// Body is a dynamic box in a World. Velocities are in px/s and the position
// reported to the controller is the box center.
type Body struct {
	Object *resolv.Object

	// OnGround is whatever the body landed on during the last Step.
	OnGround *resolv.Object
	// IgnorePlatform is a one-way platform the body is dropping through.
	IgnorePlatform *resolv.Object

	vx, vy   float64
	scale    float64
	touching []*resolv.Object
}

func (b *Body) Position() (float64, float64) {
	return b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H/2
}

func (b *Body) Velocity() (float64, float64) {
	return b.vx, b.vy
}

func (b *Body) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

func (b *Body) GravityScale() float64 {
	return b.scale
}

func (b *Body) SetGravityScale(scale float64) {
	b.scale = scale
}

// Teleport moves the body center to x, y and stops it.
func (b *Body) Teleport(x, y float64) {
	b.Object.X = x - b.Object.W/2
	b.Object.Y = y - b.Object.H/2
	b.Object.Update()
	b.vx, b.vy = 0, 0
	b.OnGround = nil
	b.IgnorePlatform = nil
}

// DropThrough lets the body fall through the one-way platform it stands on.
// It reports false when the body is not on a platform.
func (b *Body) DropThrough() bool {
	if b.OnGround == nil || !b.OnGround.HasTags(tags.ResolvPlatform) {
		return false
	}
	b.IgnorePlatform = b.OnGround
	b.OnGround = nil
	return true
}

// Touching returns the colliders in contact after the last Step.
func (b *Body) Touching() []*resolv.Object {
	return b.touching
}
