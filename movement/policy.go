package movement

// tick carries the working set of one Step call.
type tick struct {
	p      *Player
	in     Input
	body   Body
	params Params
	events *Queue
	out    *Outcome
	dt     float64

	dashExpired bool
}

func (t *tick) effect(kind EffectKind, source any) {
	x, y := t.body.Position()
	t.out.Effects = append(t.out.Effects, Effect{Kind: kind, X: x, Y: y, Source: source})
}

// applyPolicy writes velocity and gravity for the current state.
func (t *tick) applyPolicy() {
	t.climbEdges()
	t.run()
	t.airControl()
	t.jump()
	t.dashTrigger()
	t.dash()
}

func (t *tick) climbEdges() {
	p := t.p
	entering := p.State == Climbing && p.policyState != Climbing
	leaving := p.State != Climbing && p.policyState == Climbing
	p.policyState = p.State

	if entering {
		t.body.SetVelocity(0, t.params.SlideSpeed)
		t.body.SetGravityScale(0)
	}
	if leaving {
		t.body.SetGravityScale(t.params.GravityScale)
	}
}

func (t *tick) run() {
	if t.p.State != Standing && t.p.State != Running {
		return
	}
	_, vy := t.body.Velocity()
	t.body.SetVelocity(t.in.Direction()*t.params.RunSpeed, vy)
}

func (t *tick) airControl() {
	if t.p.State != Jumping || t.p.Lockout.Active() {
		return
	}
	_, vy := t.body.Velocity()
	dir := t.in.Direction()
	switch {
	case dir < 0 && t.p.Wall == LeftNext, dir > 0 && t.p.Wall == RightNext:
		t.body.SetVelocity(0, vy)
	default:
		t.body.SetVelocity(dir*t.params.RunSpeed, vy)
	}
}

func (t *tick) jump() {
	p := t.p
	if !t.in.Jump.JustPressed || t.in.Down.Held {
		return
	}
	switch p.State {
	case Standing, Running:
		vx, _ := t.body.Velocity()
		t.body.SetVelocity(vx, -t.params.JumpSpeed)
	case Climbing:
		t.body.SetVelocity(t.kickDirection()*t.params.WallKickX, -t.params.WallKickY)
		p.Lockout.Set(t.params.WallJumpLockout)
	default:
		return
	}
	t.effect(JumpDust, nil)
}

// kickDirection points away from the wall being climbed.
func (t *tick) kickDirection() float64 {
	switch t.p.Wall {
	case LeftNext:
		return 1
	case RightNext:
		return -1
	default:
		return -t.p.Facing.Sign()
	}
}

func (t *tick) dashTrigger() {
	if !t.in.Dash.JustPressed || t.p.State == Dashing {
		return
	}
	t.p.DashWindow.Set(t.params.DashDuration)
	t.events.Emit(DashStart, nil)
	t.events.Emit(CameraShake, nil)
}

func (t *tick) dash() {
	p := t.p
	if p.State != Dashing {
		return
	}
	// The expiry tick still carries the dash; dashOver stops it right after.
	if !p.DashWindow.Active() && !t.dashExpired {
		return
	}
	t.body.SetVelocity(p.Facing.Sign()*t.params.DashSpeed, 0)
	t.body.SetGravityScale(0)
	if t.dashExpired {
		t.events.Emit(DashOver, nil)
		return
	}
	// Dust only counts down while dashing.
	p.DustCooldown.Tick(t.dt)
	if !p.DustCooldown.Active() {
		t.effect(DashDust, nil)
		p.DustCooldown.Set(t.params.DashDustInterval)
	}
}

// dashOver runs after collision handling so that both the natural and the
// collision-forced end of a dash land here.
func (t *tick) dashOver() {
	if !t.events.Read(DashOver) {
		return
	}
	_, vy := t.body.Velocity()
	t.body.SetVelocity(0, vy)
	t.body.SetGravityScale(t.params.GravityScale)
}

func (t *tick) updateFacing() {
	vx, _ := t.body.Velocity()
	switch {
	case vx > 0:
		t.p.Facing = Right
	case vx < 0:
		t.p.Facing = Left
	}
}
