package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the cosmetic state: dust, springs, hair and debris.
func UpdateEffects(ecs *ecs.ECS) {
	dt := tickDT()
	updateDust(ecs, dt)
	updateAutoDestroy(ecs, dt)
	updateSprings(ecs, dt)
	updateHair(ecs)
	if field := factory.GetDebris(ecs); field != nil {
		field.Step(dt)
	}
}

// updateDust lets the puffs drift upwards.
func updateDust(ecs *ecs.ECS, dt float64) {
	components.Dust.Each(ecs.World, func(e *donburi.Entry) {
		dust := components.Dust.Get(e)
		dust.Y -= cfg.Dust.Rise * dt
	})
}

// updateAutoDestroy removes entities whose lifetime ran out
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

func updateSprings(ecs *ecs.ECS, dt float64) {
	components.Spring.Each(ecs.World, func(e *donburi.Entry) {
		spring := components.Spring.Get(e)
		if spring.Tween == nil {
			return
		}
		squash, finished := spring.Tween.Update(float32(dt))
		spring.Squash = float64(squash)
		if finished {
			spring.Tween = nil
			spring.Squash = 0
		}
	})
}

// launchSpring squashes the spring and lets it bounce back.
func launchSpring(entry *donburi.Entry) {
	spring := components.Spring.Get(entry)
	spring.Squash = cfg.Spring.Compress
	spring.Tween = gween.New(float32(cfg.Spring.Compress), 0, float32(cfg.Spring.ReboundTime), ease.OutElastic)
}

// updateHair shifts the trail one step towards the body.
func updateHair(ecs *ecs.ECS) {
	components.Hair.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Body == nil {
			return
		}
		hair := components.Hair.Get(e)
		if len(hair.X) == 0 {
			return
		}
		copy(hair.X[1:], hair.X)
		copy(hair.Y[1:], hair.Y)
		hair.X[0], hair.Y[0] = player.Body.Position()
	})
}
