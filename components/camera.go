package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// Offset is the shake displacement applied on top of Position when drawing.
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData decays the shake intensity from its start value to zero.
type ScreenShakeData struct {
	Tween     *gween.Tween
	Intensity float64 // current max offset in pixels
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
