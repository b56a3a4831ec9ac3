package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/summit/assets"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/systems"
	"github.com/automoto/summit/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClimbScene runs one level: the player, its physics and the effects around it.
type ClimbScene struct {
	ecs   *ecs.ECS
	level *assets.Level
	once  sync.Once
}

func NewClimbScene(level *assets.Level) *ClimbScene {
	return &ClimbScene{level: level}
}

func (cs *ClimbScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *ClimbScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// Close saves the run statistics and stops the tuning watcher.
func (cs *ClimbScene) Close() {
	if cs.ecs == nil {
		return
	}
	systems.SaveStats(cs.ecs)
	systems.CloseTuning(cs.ecs)
}

func (cs *ClimbScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and hot reload first so the controller sees this frame's values
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)

	// Controller, then physics: the next tick reads this step's contacts
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateStats)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	cs.ecs = ecs
	systems.SubscribeEvents(ecs)

	// The level and both collision worlds must exist before any collider.
	factory.CreateLevel(ecs, cs.level)
	factory.CreateSpace(ecs, cs.level.MapWidth, cs.level.MapHeight)
	factory.CreateDebris(ecs, time.Now().UnixNano())
	factory.BuildLevel(ecs, cs.level)

	if cfg.Debug.Tuning != "" {
		if _, err := factory.CreateTuning(ecs, cfg.Debug.Tuning); err != nil {
			log.Printf("Warning: tuning disabled: %v", err)
		}
	}

	systems.RestoreStats(ecs)

	// Snap camera to the spawn to prevent panning from (0,0)
	spawn := cs.level.Spawn
	factory.CreateCamera(ecs, spawn.X, spawn.Y)
	systems.UpdateRespawn(ecs)

	if entry, ok := components.Stats.First(ecs.World); ok {
		stats := components.Stats.Get(entry)
		log.Printf("[level] %s loaded, %d deaths so far", stats.Level, stats.Deaths)
	}
}
