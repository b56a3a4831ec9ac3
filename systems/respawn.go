package systems

import (
	"log"

	"github.com/automoto/summit/components"
	"github.com/automoto/summit/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn spawns a player at the level spawn whenever none exists.
func UpdateRespawn(ecs *ecs.ECS) {
	if _, ok := components.Player.First(ecs.World); ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || factory.GetSpace(ecs) == nil {
		return
	}

	spawn := level.Spawn
	factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	log.Printf("[respawn] player at (%.1f, %.1f)", spawn.X, spawn.Y)
}
