package systems

import (
	"log"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning re-applies the tuning file after it changed on disk. A file
// that fails to parse leaves the current values in place.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(entry)
	if tuning.Watcher == nil {
		return
	}

	changed := false
	for draining := true; draining; {
		select {
		case _, open := <-tuning.Watcher.Events:
			if !open {
				tuning.Watcher = nil
				return
			}
			changed = true
		case err, open := <-tuning.Watcher.Errors:
			if !open {
				tuning.Watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			draining = false
		}
	}
	if !changed {
		return
	}

	t, err := cfg.LoadTuning(tuning.Path)
	if err != nil {
		log.Printf("Warning: tuning reload failed, keeping previous values: %v", err)
		return
	}
	cfg.ApplyTuning(t)
	tuning.Reloads++
	log.Printf("[tuning] reloaded %s (%d)", tuning.Path, tuning.Reloads)

	if space, ok := components.Space.First(ecs.World); ok {
		world := components.Space.Get(space).World
		world.Gravity = cfg.Physics.Gravity
		world.MaxFall = cfg.Physics.MaxFallSpeed
	}
}

// CloseTuning stops the file watcher.
func CloseTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(entry)
	if tuning.Watcher != nil {
		if err := tuning.Watcher.Close(); err != nil {
			log.Printf("Warning: closing tuning watcher: %v", err)
		}
		tuning.Watcher = nil
	}
}
