package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/assets"
	"github.com/automoto/summit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity together with its run statistics.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	components.Stats.SetValue(entry, components.StatsData{Level: level.Name})
	return entry
}

// BuildLevel registers every collider of the level with the physics and
// debris worlds.
func BuildLevel(ecs *ecs.ECS, level *assets.Level) {
	for _, r := range level.Terrain {
		CreateTerrain(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Platforms {
		CreatePlatform(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.SnowPiles {
		CreateSnowPile(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Hazards {
		CreateHazard(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Springs {
		CreateSpring(ecs, r.X, r.Y, r.W, r.H)
	}
}
