package movement

// Body is the physics handle of the player. Position is the body center.
type Body interface {
	Position() (x, y float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	GravityScale() float64
	SetGravityScale(scale float64)
}

// Phase tells whether a contact began or ended.
type Phase int

const (
	Started Phase = iota
	Stopped
)

// Contact is one collision record from the physics step.
type Contact struct {
	A, B  Collider
	Phase Phase
}

// Partner returns the collider on the other side of self, if self takes
// part in the contact.
func (c Contact) Partner(self any) (Collider, bool) {
	switch {
	case self == nil:
		return Collider{}, false
	case c.A.Ref == self:
		return c.B, true
	case c.B.Ref == self:
		return c.A, true
	default:
		return Collider{}, false
	}
}
