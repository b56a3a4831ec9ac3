package components

import (
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/physics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller movement.Player
	Body       *physics.Body
	Input      movement.Input
	// Last is what the previous tick produced, kept for the debug overlay.
	Last movement.Outcome
}

var Player = donburi.NewComponentType[PlayerData]()
