package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// DustData is a puff left behind by a jump or a dash.
type DustData struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
}

var Dust = donburi.NewComponentType[DustData]()

// AutoDestroyData removes the entity once its lifetime runs out.
type AutoDestroyData struct {
	Remaining float64 // seconds
	Lifetime  float64
}

// Progress goes from 0 at spawn to 1 at removal.
func (a AutoDestroyData) Progress() float64 {
	if a.Lifetime <= 0 {
		return 1
	}
	return 1 - a.Remaining/a.Lifetime
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// HairData remembers the last few body positions, newest first.
type HairData struct {
	X, Y []float64
}

var Hair = donburi.NewComponentType[HairData]()
