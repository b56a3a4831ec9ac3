package movement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRunsWhileHeld(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(50, 100)
	p := groundedPlayer(100)

	for i := 0; i < 10; i++ {
		var out Outcome
		p, out = Step(p, Input{Right: hold()}, testEnv(body, &fakeRays{}), params)
		assert.Empty(t, out.Unread)
		assert.Equal(t, params.RunSpeed, body.vx, "tick %d", i)
		assert.Equal(t, Running, p.State, "tick %d", i)
		assert.Equal(t, Right, p.Facing)
	}

	p, _ = Step(p, Input{}, testEnv(body, &fakeRays{}), params)
	assert.Zero(t, body.vx)
	assert.Equal(t, Standing, p.State)
	assert.Equal(t, Right, p.Facing, "facing is kept when velocity is zero")
}

func TestStepLeftWinsOverRight(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, _ = Step(p, Input{Left: hold(), Right: hold()}, testEnv(body, nil), params)
	assert.Equal(t, -params.RunSpeed, body.vx)
	assert.Equal(t, Left, p.Facing)
}

func TestStepDashLastsItsWindow(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, out := Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	require.Equal(t, Dashing, p.State)
	assert.True(t, hasEvent(out, DashStart))
	assert.True(t, hasEvent(out, CameraShake))
	assert.Empty(t, out.Unread)

	// The first tick only opens the window; eleven more carry the dash
	// before it runs out on the twelfth tick after the press.
	for i := 2; i <= 12; i++ {
		p, out = Step(p, Input{Left: hold(), Jump: press(i == 5)}, testEnv(body, nil), params)
		require.Equal(t, Dashing, p.State, "tick %d", i)
		assert.Equal(t, params.DashSpeed, body.vx, "tick %d", i)
		assert.Zero(t, body.vy, "tick %d", i)
		assert.Zero(t, body.scale, "tick %d", i)
		assert.False(t, hasEvent(out, DashOver), "tick %d", i)
		assert.Empty(t, out.Unread)
	}

	p, out = Step(p, Input{}, testEnv(body, nil), params)
	assert.True(t, hasEvent(out, DashOver))
	assert.Empty(t, out.Unread)
	assert.Equal(t, Standing, p.State)
	assert.Zero(t, body.vx)
	assert.Equal(t, params.GravityScale, body.scale)
}

func TestStepDashDustIsThrottled(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, _ = Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	dust := 0
	for i := 0; i < 11; i++ {
		var out Outcome
		p, out = Step(p, Input{}, testEnv(body, nil), params)
		for _, e := range out.Effects {
			if e.Kind == DashDust {
				dust++
			}
		}
	}
	// One puff every 0.02s at 60 ticks per second is every other tick.
	assert.Equal(t, 6, dust)
}

func TestStepDustCooldownOnlyRunsWhileDashing(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)
	p.DustCooldown.Set(params.DashDustInterval)

	for i := 0; i < 5; i++ {
		p, _ = Step(p, Input{}, testEnv(body, nil), params)
	}
	assert.Equal(t, params.DashDustInterval, p.DustCooldown.Seconds())

	p, _ = Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	p, out := Step(p, Input{}, testEnv(body, nil), params)
	assert.Empty(t, out.Effects, "the leftover cooldown holds the first puff")
	assert.Less(t, p.DustCooldown.Seconds(), params.DashDustInterval)
}

func TestStepDashIsNotRetriggered(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, _ = Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	window := p.DashWindow
	p, out := Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	assert.False(t, hasEvent(out, DashStart))
	assert.Less(t, p.DashWindow.Seconds(), window.Seconds())
}

func TestStepJumpOnlyOnPress(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 100)
	p := groundedPlayer(100)

	p, out := Step(p, Input{Jump: press(true)}, testEnv(body, nil), params)
	assert.Equal(t, -params.JumpSpeed, body.vy)
	require.Len(t, out.Effects, 1)
	assert.Equal(t, JumpDust, out.Effects[0].Kind)

	// Gravity is the host's job; pretend it already slowed the rise.
	body.vy = -150
	for i := 0; i < 5; i++ {
		p, out = Step(p, Input{Jump: hold()}, testEnv(body, nil), params)
		assert.Equal(t, -150.0, body.vy)
		assert.Empty(t, out.Effects)
	}
}

func TestStepDownSuppressesJump(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 100)
	p := groundedPlayer(100)

	_, out := Step(p, Input{Down: hold(), Jump: press(true)}, testEnv(body, nil), params)
	assert.Zero(t, body.vy)
	assert.Empty(t, out.Effects)
}

func TestStepWallJumpLocksAirControl(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	rays := &fakeRays{left: true}
	p := NewPlayer()
	p.State = Climbing
	p.policyState = Climbing

	fall := func() { body.y++ }

	in := Input{Left: hold(), Jump: press(true)}
	p, out := Step(p, in, testEnv(body, rays), params)
	fall()
	assert.Equal(t, params.WallKickX, body.vx, "kicks away from the left wall")
	assert.Equal(t, -params.WallKickY, body.vy)
	assert.True(t, p.Lockout.Active())
	assert.Empty(t, out.Unread)

	rays.left = false
	in = Input{Left: hold()}
	for i := 1; i <= 11; i++ {
		p, _ = Step(p, in, testEnv(body, rays), params)
		fall()
		assert.Equal(t, params.WallKickX, body.vx, "tick N+%d", i)
	}
	assert.Equal(t, Jumping, p.State)
	assert.Equal(t, params.GravityScale, body.scale)

	p, _ = Step(p, in, testEnv(body, rays), params)
	assert.False(t, p.Lockout.Active())
	assert.Equal(t, -params.RunSpeed, body.vx, "control is back on tick N+12")
}

func TestStepWallKickWithoutWallUsesFacing(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := NewPlayer()
	p.State = Climbing
	p.policyState = Climbing
	p.Facing = Left

	Step(p, Input{Jump: press(true)}, testEnv(body, nil), params)
	assert.Equal(t, params.WallKickX, body.vx)
}

func TestStepAirControlStopsAtWall(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	body.vx = 30
	p := NewPlayer()
	p.State = Jumping
	p.policyState = Jumping

	p, _ = Step(p, Input{Right: hold()}, testEnv(body, &fakeRays{right: true}), params)
	assert.Zero(t, body.vx)
	assert.Equal(t, Climbing, p.State)
}

func TestStepClimbEdges(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	body.vx, body.vy = 40, 80
	rays := &fakeRays{left: true}
	p := NewPlayer()
	p.State = Jumping
	p.policyState = Jumping

	p, _ = Step(p, Input{Left: hold()}, testEnv(body, rays), params)
	require.Equal(t, Climbing, p.State)

	body.y++
	p, _ = Step(p, Input{Left: hold()}, testEnv(body, rays), params)
	assert.Zero(t, body.vx)
	assert.Equal(t, params.SlideSpeed, body.vy)
	assert.Zero(t, body.scale)
	assert.Equal(t, Climbing, p.State)

	// Letting go drops back to Jumping, and gravity returns on the next tick.
	body.y++
	p, _ = Step(p, Input{}, testEnv(body, rays), params)
	assert.Equal(t, Jumping, p.State)
	body.y++
	Step(p, Input{}, testEnv(body, rays), params)
	assert.Equal(t, params.GravityScale, body.scale)
}

func TestStepSnowPileEndsDash(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	pile := &struct{ id int }{1}
	p := groundedPlayer(0)

	p, _ = Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	p, _ = Step(p, Input{}, testEnv(body, nil), params)
	require.Equal(t, Dashing, p.State)

	p, out := Step(p, Input{}, testEnv(body, nil, started(body, pile, KindSnowPile)), params)
	assert.True(t, hasEvent(out, DashOver))
	assert.Empty(t, out.Unread)
	assert.Equal(t, Standing, p.State)
	assert.False(t, p.DashWindow.Active())
	assert.Equal(t, params.GravityScale, body.scale)
	require.Len(t, out.Effects, 1)
	assert.Equal(t, BreakPile, out.Effects[0].Kind)
	assert.Same(t, pile, out.Effects[0].Source)
}

func TestStepSnowPileIgnoredWhenNotDashing(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, out := Step(p, Input{}, testEnv(body, nil, started(body, "pile", KindSnowPile)), params)
	assert.Empty(t, out.Events)
	assert.Empty(t, out.Effects)
	assert.Equal(t, Standing, p.State)
}

func TestStepSpringLaunches(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	body.scale = 0
	p := NewPlayer()
	p.State = Jumping
	p.policyState = Jumping
	p.Lockout.Set(params.WallJumpLockout)

	p, out := Step(p, Input{}, testEnv(body, nil, started(body, "spring", KindSpring)), params)
	assert.Equal(t, -params.SpringSpeed, body.vy)
	assert.Equal(t, params.GravityScale, body.scale)
	assert.True(t, hasEvent(out, SpringLaunch))
	assert.Empty(t, out.Unread)
	assert.False(t, p.Lockout.Active(), "any impact clears the wall jump lockout")
	assert.Equal(t, "spring", out.Events[0].Source)
}

func TestStepSpringEndsDash(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := groundedPlayer(0)

	p, _ = Step(p, Input{Dash: press(true)}, testEnv(body, nil), params)
	body.y -= 3
	p, out := Step(p, Input{}, testEnv(body, nil, started(body, "spring", KindSpring)), params)
	assert.True(t, hasEvent(out, DashOver))
	assert.True(t, hasEvent(out, SpringLaunch))
	assert.Equal(t, -params.SpringSpeed, body.vy)
	assert.NotEqual(t, Dashing, p.State)
}

func TestStepHazardKills(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(10, 20)
	p := groundedPlayer(20)
	p.State = Running

	next, out := Step(p, Input{Right: hold(), Dash: press(true)},
		testEnv(body, nil, started(body, "spikes", KindHazard)), params)
	assert.True(t, out.Died)
	assert.True(t, hasEvent(out, CameraShake))
	assert.Equal(t, []Event{{Kind: DashStart}}, out.Unread,
		"the state machine never reads the dash raised on the fatal tick")
	assert.Equal(t, Running, next.State, "the state machine does not run after death")
	require.NotEmpty(t, out.Effects)
	burst := out.Effects[len(out.Effects)-1]
	assert.Equal(t, DeathBurst, burst.Kind)
	assert.Equal(t, 10.0, burst.X)
	assert.Equal(t, 20.0, burst.Y)
}

func TestStepHazardTickDeliversHostEvents(t *testing.T) {
	body := newFakeBody(10, 20)
	env := testEnv(body, nil, started(body, "spikes", KindHazard))
	env.Delivered = []EventKind{CameraShake, SpringLaunch, DashStart}

	_, out := Step(groundedPlayer(20), Input{Dash: press(true)}, env, DefaultParams())
	assert.True(t, out.Died)
	assert.True(t, hasEvent(out, DashStart))
	assert.Empty(t, out.Unread)
}

func TestStepReportsUndeliveredEvents(t *testing.T) {
	body := newFakeBody(0, 0)
	env := testEnv(body, nil)
	env.Delivered = nil

	p, out := Step(groundedPlayer(0), Input{Dash: press(true)}, env, DefaultParams())
	require.Equal(t, Dashing, p.State)
	assert.Equal(t, []Event{{Kind: CameraShake}}, out.Unread, "nobody took the shake")
}

func TestStepIgnoresOtherContacts(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	other := newFakeBody(5, 5)
	p := NewPlayer()
	p.State = Jumping
	p.policyState = Jumping
	p.Lockout.Set(params.WallJumpLockout)

	contacts := []Contact{
		{A: Collider{Ref: other}, B: Collider{Ref: "spikes", Kind: KindHazard}, Phase: Started},
		{A: Collider{Ref: body}, B: Collider{Ref: "spikes", Kind: KindHazard}, Phase: Stopped},
		{A: Collider{Ref: "x", Kind: KindUnknown}, B: Collider{Ref: body}, Phase: Started},
	}
	p, out := Step(p, Input{}, Env{Body: body, Self: body, Contacts: contacts, DT: testDT}, params)
	assert.False(t, out.Died)
	assert.Empty(t, out.Events)
	assert.True(t, p.Lockout.Active())
}

func TestStepTerrainContactClearsLockout(t *testing.T) {
	params := DefaultParams()
	body := newFakeBody(0, 0)
	p := NewPlayer()
	p.State = Jumping
	p.policyState = Jumping
	p.Lockout.Set(params.WallJumpLockout)

	p, _ = Step(p, Input{}, testEnv(body, nil, started(body, testWall, KindTerrain)), params)
	assert.False(t, p.Lockout.Active())
}

func TestStepWithoutBodyIsNoop(t *testing.T) {
	p := groundedPlayer(0)
	p.DashWindow.Set(0.1)

	next, out := Step(p, Input{Dash: press(true), Right: hold()}, Env{DT: testDT}, DefaultParams())
	assert.Equal(t, p, next)
	assert.Empty(t, out.Events)
	assert.Empty(t, out.Effects)
	assert.False(t, out.Died)
}

func TestStepAlwaysDrainsEvents(t *testing.T) {
	params := DefaultParams()
	rng := rand.New(rand.NewSource(7))
	body := newFakeBody(0, 0)
	rays := &fakeRays{}
	p := NewPlayer()

	kinds := []Kind{KindTerrain, KindSnowPile, KindSpring}
	for i := 0; i < 2000; i++ {
		in := Input{
			Left:  press(rng.Intn(3) == 0),
			Right: press(rng.Intn(3) == 0),
			Down:  press(rng.Intn(6) == 0),
			Jump:  press(rng.Intn(4) == 0),
			Dash:  press(rng.Intn(8) == 0),
		}
		rays.left = rng.Intn(4) == 0
		rays.right = rng.Intn(4) == 0
		if rng.Intn(3) > 0 {
			body.y += rng.Float64() * 2
		}

		var contacts []Contact
		if rng.Intn(10) == 0 {
			contacts = append(contacts, started(body, i, kinds[rng.Intn(len(kinds))]))
		}

		var out Outcome
		p, out = Step(p, in, testEnv(body, rays, contacts...), params)
		require.Empty(t, out.Unread, "tick %d", i)
		require.Contains(t, []State{Standing, Running, Jumping, Dashing, Climbing}, p.State)
		require.GreaterOrEqual(t, p.Lockout.Seconds(), 0.0)
		require.GreaterOrEqual(t, p.DashWindow.Seconds(), 0.0)
	}
}
