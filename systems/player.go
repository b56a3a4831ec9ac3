package systems

import (
	"log"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDT is the fixed simulation step in seconds.
func tickDT() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdatePlayer runs the movement controller against the contacts of the
// previous physics step. Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	space := factory.GetSpace(ecs)
	if space == nil {
		return
	}
	player := components.Player.Get(playerEntry)

	// Down+jump on a wooden stand drops through it; the controller already
	// withholds the jump impulse for that combination.
	if player.Input.Down.Held && player.Input.Jump.JustPressed && player.Body != nil {
		if player.Body.DropThrough() {
			log.Printf("[player] dropping through platform")
		}
	}

	next, out := movement.Step(player.Controller, player.Input, movement.Env{
		Body:      player.Body,
		Self:      player.Body,
		Rays:      space.World,
		Contacts:  space.Contacts,
		DT:        tickDT(),
		Delivered: deliveredEvents,
	}, cfg.Params())
	player.Controller = next
	player.Last = out

	for _, e := range out.Unread {
		log.Printf("[player] dropped event %s", e.Kind)
	}

	for _, e := range out.Events {
		PlayerEvents.Publish(ecs.World, e)
	}
	for _, fx := range out.Effects {
		PlayerEffects.Publish(ecs.World, fx)
	}

	if out.Died {
		killPlayer(ecs, playerEntry)
	}
}

// killPlayer removes the body; UpdateRespawn brings a new one next tick.
func killPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	x, y := player.Body.Position()
	log.Printf("[player] died at (%.1f, %.1f)", x, y)

	if stats := getStats(ecs); stats != nil {
		stats.Deaths++
		saveStats(stats)
	}

	// Stale contacts name the removed body and must not reach the next one.
	if space := factory.GetSpace(ecs); space != nil {
		space.Contacts = nil
	}
	factory.RemovePlayer(ecs, playerEntry)
}
