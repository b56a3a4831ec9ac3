package movement

// Env is what the host provides for one tick.
type Env struct {
	// Body is nil while no player body exists.
	Body Body
	// Self is the collider handle of Body, matched against Contacts.
	Self     any
	Rays     RayCaster
	Contacts []Contact
	DT       float64
	// Delivered lists the event kinds the host hands to its own readers.
	// Anything else the controller does not read comes back in Unread.
	Delivered []EventKind
}

// Step advances the controller by one tick:
// detectors, timers, motion policy, collision interruption, dash-over
// handling, facing, then the state machine. The state machine therefore
// sees the previous physics step's position and this tick's velocity.
func Step(p Player, in Input, env Env, params Params) (Player, Outcome) {
	var out Outcome
	if env.Body == nil {
		return p, out
	}

	var events Queue
	t := &tick{p: &p, in: in, body: env.Body, params: params, events: &events, out: &out, dt: env.DT}

	x, y := env.Body.Position()
	p.Ground.Observe(y)
	p.Wall = DetectWall(env.Rays, x, y, params)

	p.Lockout.Tick(env.DT)
	t.dashExpired = p.DashWindow.Tick(env.DT)

	t.applyPolicy()

	if !t.interrupt(env.Self, env.Contacts) {
		// The body is gone and the state machine will not run, so only
		// the host reads this tick's events.
		deliver(&events, env.Delivered)
		out.Events = events.Events()
		out.Unread = events.Drain()
		return p, out
	}

	t.dashOver()
	t.updateFacing()

	vx, _ := env.Body.Velocity()
	p.State = Transition(p.State, Signals{
		DashStart: events.Read(DashStart),
		DashOver:  events.Read(DashOver),
		Grounded:  p.Ground.Grounded,
		VX:        vx,
		Wall:      p.Wall,
		LeftHeld:  in.Left.Held,
		RightHeld: in.Right.Held,
	}, params.StandThreshold)

	deliver(&events, env.Delivered)
	out.Events = events.Events()
	out.Unread = events.Drain()
	return p, out
}

func deliver(events *Queue, kinds []EventKind) {
	for _, k := range kinds {
		events.Read(k)
	}
}
