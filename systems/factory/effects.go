package factory

import (
	"image/color"

	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDust creates a dust puff centered at x, y.
func SpawnDust(ecs *ecs.ECS, x, y float64, c color.RGBA) *donburi.Entry {
	entry := archetypes.Dust.Spawn(ecs)
	components.Dust.SetValue(entry, components.DustData{
		X:     x,
		Y:     y,
		Size:  cfg.Dust.Size,
		Color: c,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		Remaining: cfg.Dust.Lifetime,
		Lifetime:  cfg.Dust.Lifetime,
	})
	return entry
}
