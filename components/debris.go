package components

import (
	"github.com/automoto/summit/debris"
	"github.com/yohamta/donburi"
)

type DebrisData struct {
	*debris.Field
}

var Debris = donburi.NewComponentType[DebrisData]()
