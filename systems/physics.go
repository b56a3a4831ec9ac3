package systems

import (
	"github.com/automoto/summit/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body and keeps the contacts for the next
// controller tick.
func UpdatePhysics(ecs *ecs.ECS) {
	space := factory.GetSpace(ecs)
	if space == nil {
		return
	}
	space.Contacts = space.World.Step(tickDT())
}
