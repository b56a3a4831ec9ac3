package movement

// Params are the fixed design constants of the controller. Speeds are in
// world units per second, durations in seconds. Positive y points down.
type Params struct {
	RunSpeed    float64
	JumpSpeed   float64
	DashSpeed   float64
	SlideSpeed  float64 // downward speed set when a climb starts
	WallKickX   float64
	WallKickY   float64
	SpringSpeed float64

	GravityScale float64 // default gravity multiplier

	DashDuration     float64
	DashDustInterval float64
	WallJumpLockout  float64

	// StandThreshold splits Standing from Running on |vx|.
	StandThreshold float64

	HalfWidth       float64
	WallProbeGap    float64
	WallProbeLength float64
}

// DefaultParams returns the tuning the game ships with, for 8px tiles.
func DefaultParams() Params {
	return Params{
		RunSpeed:    60,
		JumpSpeed:   200,
		DashSpeed:   160,
		SlideSpeed:  10,
		WallKickX:   100,
		WallKickY:   200,
		SpringSpeed: 300,

		GravityScale: 1,

		DashDuration:     0.2,
		DashDustInterval: 0.02,
		WallJumpLockout:  0.2,

		StandThreshold: 0.1,

		HalfWidth:       4,
		WallProbeGap:    0.1,
		WallProbeLength: 1,
	}
}
