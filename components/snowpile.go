package components

import "github.com/yohamta/donburi"

type SnowPileData struct {
	Broken bool
}

var SnowPile = donburi.NewComponentType[SnowPileData]()
