// Package movement is the player controller: detectors, timers, the motion
// policy and the state machine that decide, once per tick, how the player
// body moves. It has no engine dependencies; the host hands it a Body, a
// RayCaster and the collision records of the previous physics step.
package movement

// State is the player's discrete movement state. Exactly one is active.
type State int

const (
	Standing State = iota
	Running
	Jumping
	Dashing
	Climbing
)

func (s State) String() string {
	switch s {
	case Standing:
		return "standing"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Dashing:
		return "dashing"
	case Climbing:
		return "climbing"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the player looks at.
// The zero value is Right, which is also the respawn default.
type Facing int

const (
	Right Facing = iota
	Left
)

// Sign returns -1 for Left and +1 for Right.
func (f Facing) Sign() float64 {
	if f == Left {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == Left {
		return "left"
	}
	return "right"
}

// Adjacency reports climbable terrain directly beside the body.
type Adjacency int

const (
	NoWall Adjacency = iota
	LeftNext
	RightNext
)

func (a Adjacency) String() string {
	switch a {
	case LeftNext:
		return "left"
	case RightNext:
		return "right"
	default:
		return "none"
	}
}
