package components

import "github.com/yohamta/donburi"

// StatsData counts what happened on the current level.
type StatsData struct {
	Level       string
	Deaths      int
	Jumps       int
	Dashes      int
	Springs     int
	PilesBroken int
	Time        float64 // seconds since the level started
}

var Stats = donburi.NewComponentType[StatsData]()
