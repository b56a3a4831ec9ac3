package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a fresh player whose feet rest at x, y.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	cx, cy := x, y-h/2

	space := GetSpace(ecs)
	body := space.World.AddBody(cx, cy, w, h, cfg.Player.GravityScale, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Controller: movement.NewPlayer(),
		Body:       body,
	})

	hair := components.HairData{
		X: make([]float64, cfg.Hair.Length),
		Y: make([]float64, cfg.Hair.Length),
	}
	for i := range hair.X {
		hair.X[i], hair.Y[i] = cx, cy
	}
	components.Hair.SetValue(player, hair)

	return player
}

// RemovePlayer takes the body out of the physics world and destroys the entity.
func RemovePlayer(ecs *ecs.ECS, player *donburi.Entry) {
	data := components.Player.Get(player)
	if space := GetSpace(ecs); space != nil {
		space.World.RemoveBody(data.Body)
	}
	data.Body = nil
	player.Remove()
}
