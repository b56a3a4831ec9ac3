package systems

import (
	"image/color"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/systems/factory"
	"github.com/automoto/summit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spikeWidth = 4.0

// DrawObjects renders the level entities the tile background does not show.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := viewOffset(ecs, screen)
	if !ok {
		return
	}

	tags.SnowPile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Collider.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Debris.SnowColor, false)
	})

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Collider.Get(e)
		drawSpikes(screen, o.X+camX, o.Y+camY, o.W, o.H)
	})

	tags.Spring.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Collider.Get(e)
		spring := components.Spring.Get(e)
		h := o.H * (1 - spring.Squash)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+o.H-h+camY), float32(o.W), float32(h), cfg.Spring.Color, false)
	})
}

// drawSpikes outlines a row of triangles over a hazard box.
func drawSpikes(screen *ebiten.Image, x, y, w, h float64) {
	for sx := x; sx+spikeWidth <= x+w+0.01; sx += spikeWidth {
		tipX, tipY := float32(sx+spikeWidth/2), float32(y)
		vector.StrokeLine(screen, float32(sx), float32(y+h), tipX, tipY, 1, cfg.Red, false)
		vector.StrokeLine(screen, tipX, tipY, float32(sx+spikeWidth), float32(y+h), 1, cfg.Red, false)
	}
}

// DrawEffects renders dust puffs and debris chunks.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := viewOffset(ecs, screen)
	if !ok {
		return
	}

	components.Dust.Each(ecs.World, func(e *donburi.Entry) {
		dust := components.Dust.Get(e)
		fade := 1 - components.AutoDestroy.Get(e).Progress()
		size := dust.Size * (0.5 + fade/2)
		vector.DrawFilledCircle(screen, float32(dust.X+camX), float32(dust.Y+camY), float32(size/2), fadeColor(dust.Color, fade), false)
	})

	if field := factory.GetDebris(ecs); field != nil {
		for _, chunk := range field.Chunks() {
			x, y := chunk.Position()
			vector.DrawFilledCircle(screen, float32(x+camX), float32(y+camY), float32(chunk.Radius), fadeColor(cfg.Debris.SnowColor, chunk.Fade()), false)
		}
	}
}

// DrawPlayer renders the hair trail and the body box.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := viewOffset(ecs, screen)
	if !ok {
		return
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Body == nil {
			return
		}

		bodyColor, hairColor := cfg.Player.Color, cfg.Hair.Color
		if player.Controller.State == movement.Dashing {
			bodyColor, hairColor = cfg.Player.DashColor, cfg.Player.DashColor
		}

		hair := components.Hair.Get(e)
		for i := len(hair.X) - 1; i >= 0; i-- {
			r := cfg.Hair.Radius * (1 - float64(i)/float64(len(hair.X)+1))
			hx := hair.X[i] - player.Controller.Facing.Sign()*2
			hy := hair.Y[i] - cfg.Player.CollisionHeight/2 + 2
			vector.DrawFilledCircle(screen, float32(hx+camX), float32(hy+camY), float32(r), hairColor, false)
		}

		o := player.Body.Object
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), bodyColor, false)
	})
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	// Premultiplied alpha
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
