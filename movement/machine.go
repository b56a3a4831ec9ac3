package movement

import "math"

// Signals are the inputs of the transition function for one tick.
type Signals struct {
	DashStart bool
	DashOver  bool
	Grounded  bool
	VX        float64
	Wall      Adjacency
	LeftHeld  bool
	RightHeld bool
}

// Transition picks the next state. Rules are checked in priority order and
// the first match wins; if none matches the state is kept.
func Transition(current State, s Signals, standThreshold float64) State {
	switch {
	case s.DashStart:
		return Dashing
	case current == Dashing && !s.DashOver:
		return Dashing
	case s.Grounded && math.Abs(s.VX) < standThreshold:
		return Standing
	case s.Grounded:
		return Running
	case s.Wall == LeftNext && s.LeftHeld, s.Wall == RightNext && s.RightHeld:
		return Climbing
	case !s.Grounded:
		return Jumping
	default:
		return current
	}
}
