package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type SpringData struct {
	// Squash is the compressed fraction of the spring height.
	Squash float64
	Tween  *gween.Tween
}

var Spring = donburi.NewComponentType[SpringData]()
