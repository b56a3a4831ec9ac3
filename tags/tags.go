package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Terrain  = donburi.NewTag().SetName("Terrain")
	Platform = donburi.NewTag().SetName("Platform")
	SnowPile = donburi.NewTag().SetName("SnowPile")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Spring   = donburi.NewTag().SetName("Spring")
	Dust     = donburi.NewTag().SetName("Dust")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvSnowPile = "snowpile"
	ResolvHazard   = "hazard"
	ResolvSpring   = "spring"
	ResolvPlayer   = "Player"
)
