package systems

import (
	"log"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/movement"
	"github.com/automoto/summit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

var (
	// PlayerEvents carries the controller's one-shot signals to the camera,
	// springs and statistics.
	PlayerEvents = events.NewEventType[movement.Event]()
	// PlayerEffects carries dust, debris and snow pile requests.
	PlayerEffects = events.NewEventType[movement.Effect]()
)

// deliveredEvents are the kinds onPlayerEvent handles. Keep in sync with its
// switch; anything else the controller leaves unread is reported as dropped.
var deliveredEvents = []movement.EventKind{
	movement.CameraShake,
	movement.SpringLaunch,
	movement.DashStart,
}

// SubscribeEvents wires the collaborators of the controller. Call it once per
// world, before the first update.
func SubscribeEvents(e *ecs.ECS) {
	PlayerEvents.Subscribe(e.World, func(w donburi.World, ev movement.Event) {
		onPlayerEvent(e, ev)
	})
	PlayerEffects.Subscribe(e.World, func(w donburi.World, fx movement.Effect) {
		onPlayerEffect(e, fx)
	})
}

// ProcessEvents delivers everything published during this tick.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func onPlayerEvent(ecs *ecs.ECS, ev movement.Event) {
	stats := getStats(ecs)
	switch ev.Kind {
	case movement.CameraShake:
		TriggerScreenShake(ecs, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
	case movement.SpringLaunch:
		if entry, ok := factory.ColliderEntry(ev.Source); ok && entry.HasComponent(components.Spring) {
			launchSpring(entry)
		}
		if stats != nil {
			stats.Springs++
		}
	case movement.DashStart:
		if stats != nil {
			stats.Dashes++
		}
	}
}

func onPlayerEffect(ecs *ecs.ECS, fx movement.Effect) {
	feet := fx.Y + cfg.Player.CollisionHeight/2
	switch fx.Kind {
	case movement.JumpDust:
		factory.SpawnDust(ecs, fx.X, feet, cfg.Dust.JumpColor)
		if stats := getStats(ecs); stats != nil {
			stats.Jumps++
		}
	case movement.DashDust:
		factory.SpawnDust(ecs, fx.X, fx.Y, cfg.Player.DashColor)
	case movement.DeathBurst:
		if field := factory.GetDebris(ecs); field != nil {
			field.Burst(fx.X, fx.Y, cfg.Debris.DeathChunks)
		}
	case movement.BreakPile:
		entry, ok := factory.ColliderEntry(fx.Source)
		if !ok || !entry.HasComponent(components.SnowPile) {
			return
		}
		breakSnowPile(ecs, entry)
	}
}

// breakSnowPile removes a snow pile hit by a dash and scatters it.
func breakSnowPile(ecs *ecs.ECS, entry *donburi.Entry) {
	pile := components.SnowPile.Get(entry)
	if pile.Broken {
		return
	}
	pile.Broken = true

	collider := components.Collider.Get(entry)
	cx, cy := collider.X+collider.W/2, collider.Y+collider.H/2
	log.Printf("[snowpile] broken at (%.1f, %.1f)", cx, cy)

	factory.RemoveCollider(ecs, entry)
	if field := factory.GetDebris(ecs); field != nil {
		field.Burst(cx, cy, cfg.Debris.PileChunks)
	}
	if stats := getStats(ecs); stats != nil {
		stats.PilesBroken++
	}
}
