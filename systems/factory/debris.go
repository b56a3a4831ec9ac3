package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/debris"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateDebris(ecs *ecs.ECS, seed int64) *donburi.Entry {
	entry := archetypes.Debris.Spawn(ecs)
	field := debris.NewField(debris.Settings{
		Gravity:    cfg.Debris.Gravity,
		Radius:     cfg.Debris.Radius,
		Mass:       cfg.Debris.Mass,
		Elasticity: cfg.Debris.Elasticity,
		Friction:   cfg.Debris.Friction,
		Speed:      cfg.Debris.Speed,
		Life:       cfg.Debris.Life,
		MaxChunks:  cfg.Debris.MaxChunks,
	}, seed)
	components.Debris.SetValue(entry, components.DebrisData{Field: field})
	return entry
}

// GetDebris returns the debris field, or nil if none was created.
func GetDebris(ecs *ecs.ECS) *debris.Field {
	entry, ok := components.Debris.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Debris.Get(entry).Field
}
