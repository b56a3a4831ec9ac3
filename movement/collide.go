package movement

// interrupt reacts to the collision records of the last physics step.
// It returns false when the player died and the tick must stop.
func (t *tick) interrupt(self any, contacts []Contact) bool {
	for _, c := range contacts {
		if c.Phase != Started {
			continue
		}
		other, ok := c.Partner(self)
		if !ok || other.Kind == KindUnknown {
			continue
		}

		// Any impact gives control back after a wall jump.
		t.p.Lockout.Clear()

		switch other.Kind {
		case KindSnowPile:
			if t.p.State == Dashing {
				t.p.DashWindow.Clear()
				t.events.Emit(DashOver, other.Ref)
				t.effect(BreakPile, other.Ref)
			}
		case KindSpring:
			vx, _ := t.body.Velocity()
			t.body.SetVelocity(vx, -t.params.SpringSpeed)
			t.body.SetGravityScale(t.params.GravityScale)
			t.events.Emit(SpringLaunch, other.Ref)
			if t.p.State == Dashing {
				t.p.DashWindow.Clear()
				t.events.Emit(DashOver, other.Ref)
			}
		case KindHazard:
			t.effect(DeathBurst, other.Ref)
			t.events.Emit(CameraShake, other.Ref)
			t.out.Died = true
			return false
		}
	}
	return true
}
