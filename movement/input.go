package movement

// Button is the per-tick state of one logical key.
type Button struct {
	Held        bool // down this tick
	JustPressed bool // went from up to down this tick
}

// Input is the snapshot of the keys the controller reads.
type Input struct {
	Left  Button
	Right Button
	Down  Button
	Jump  Button
	Dash  Button
}

// Direction returns -1, 0 or +1 for the held horizontal keys.
// Left wins when both are held.
func (in Input) Direction() float64 {
	if in.Left.Held {
		return -1
	}
	if in.Right.Held {
		return 1
	}
	return 0
}
