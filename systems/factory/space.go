package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(width, height, cfg.Physics.CellSize, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

// GetSpace returns the collision world, or nil before the level is built.
func GetSpace(ecs *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
