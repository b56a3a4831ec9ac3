package movement

// countdownEpsilon absorbs float drift so that a window of N*dt seconds
// expires after exactly N ticks.
const countdownEpsilon = 1e-9

// Countdown is a number of seconds remaining. It never goes negative.
type Countdown float64

// Set restarts the countdown.
func (c *Countdown) Set(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	*c = Countdown(seconds)
}

// Clear stops the countdown without reporting an expiry.
func (c *Countdown) Clear() {
	*c = 0
}

// Tick subtracts dt and reports whether the countdown reached zero on this
// call. An already expired countdown never reports again.
func (c *Countdown) Tick(dt float64) bool {
	if *c <= 0 {
		return false
	}
	left := float64(*c) - dt
	if left <= countdownEpsilon {
		*c = 0
		return true
	}
	*c = Countdown(left)
	return false
}

// Active reports whether time remains.
func (c Countdown) Active() bool {
	return c > 0
}

// Seconds returns the remaining time.
func (c Countdown) Seconds() float64 {
	return float64(c)
}
