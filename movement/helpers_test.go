package movement

import "math"

const testDT = 1.0 / 60

type fakeBody struct {
	x, y   float64
	vx, vy float64
	scale  float64
}

func newFakeBody(x, y float64) *fakeBody {
	return &fakeBody{x: x, y: y, scale: 1}
}

func (b *fakeBody) Position() (float64, float64)  { return b.x, b.y }
func (b *fakeBody) Velocity() (float64, float64)  { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(vx, vy float64)    { b.vx, b.vy = vx, vy }
func (b *fakeBody) GravityScale() float64         { return b.scale }
func (b *fakeBody) SetGravityScale(scale float64) { b.scale = scale }

type fakeRays struct {
	left, right bool
}

var testWall = &struct{ name string }{"wall"}

func (r *fakeRays) CastRay(ox, oy, dx, dy, maxDist float64, kind Kind) (Hit, bool) {
	if kind != KindTerrain {
		return Hit{}, false
	}
	if (dx < 0 && r.left) || (dx > 0 && r.right) {
		return Hit{Collider: Collider{Ref: testWall, Kind: KindTerrain}}, true
	}
	return Hit{}, false
}

func groundedPlayer(y float64) Player {
	p := NewPlayer()
	p.Ground = Ground{counter: groundCounterMax, lastY: math.Round(y * 10), Grounded: true}
	return p
}

// hostEvents are the kinds the game's camera and springs take.
var hostEvents = []EventKind{CameraShake, SpringLaunch}

func testEnv(b *fakeBody, rays RayCaster, contacts ...Contact) Env {
	return Env{Body: b, Self: b, Rays: rays, Contacts: contacts, DT: testDT, Delivered: hostEvents}
}

func hasEvent(out Outcome, kind EventKind) bool {
	for _, e := range out.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func started(b *fakeBody, ref any, kind Kind) Contact {
	return Contact{
		A:     Collider{Ref: b},
		B:     Collider{Ref: ref, Kind: kind},
		Phase: Started,
	}
}

func press(held bool) Button {
	return Button{Held: held, JustPressed: held}
}

func hold() Button {
	return Button{Held: true}
}
