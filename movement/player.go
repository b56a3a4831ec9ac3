package movement

// Player is everything the controller remembers about one player body
// between ticks. It is a plain value; Step returns the next one.
type Player struct {
	State  State
	Facing Facing
	Ground Ground
	Wall   Adjacency

	Lockout      Countdown // aerial input ignored while active
	DashWindow   Countdown
	DustCooldown Countdown

	// policyState is the state the motion policy saw on the previous tick,
	// used to detect climb edges.
	policyState State
}

// NewPlayer returns the aggregate of a freshly spawned body.
func NewPlayer() Player {
	return Player{
		State:       Standing,
		Facing:      Right,
		policyState: Standing,
	}
}

// Grounded reports the debounced ground flag.
func (p Player) Grounded() bool {
	return p.Ground.Grounded
}

// EffectKind names a cosmetic or world side effect the host carries out.
type EffectKind int

const (
	JumpDust EffectKind = iota + 1
	DashDust
	DeathBurst
	BreakPile
)

// Effect is a request for the host, located at X, Y. Source is the collider
// involved, if any.
type Effect struct {
	Kind   EffectKind
	X, Y   float64
	Source any
}

// Outcome is what a tick produced besides the new Player value.
type Outcome struct {
	// Events raised this tick, in order, for animation and camera.
	Events []Event
	// Unread lists events no reader consumed. Always empty unless a
	// producer and its readers disagree.
	Unread  []Event
	Effects []Effect
	// Died means the body touched a hazard; the host removes it.
	Died bool
}
