package archetypes

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Hair,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Collider,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Collider,
	)
	SnowPile = newArchetype(
		tags.SnowPile,
		components.Collider,
		components.SnowPile,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Collider,
	)
	Spring = newArchetype(
		tags.Spring,
		components.Collider,
		components.Spring,
	)
	Dust = newArchetype(
		tags.Dust,
		components.Dust,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Debris = newArchetype(
		components.Debris,
	)
	Level = newArchetype(
		components.Level,
		components.Stats,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Tuning = newArchetype(
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
