package components

import (
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/physics"
	"github.com/yohamta/donburi"
)

// SpaceData is the collision world plus the contacts its last step produced.
type SpaceData struct {
	World    *physics.World
	Contacts []movement.Contact
}

var Space = donburi.NewComponentType[SpaceData]()
