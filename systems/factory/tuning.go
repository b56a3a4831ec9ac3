package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTuning loads the tuning file and starts watching it for changes.
func CreateTuning(ecs *ecs.ECS, path string) (*donburi.Entry, error) {
	tuning, err := cfg.LoadTuning(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyTuning(tuning)

	watcher, err := cfg.NewTuningWatcher(path)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Tuning.Spawn(ecs)
	components.Tuning.SetValue(entry, components.TuningData{Path: path, Watcher: watcher})
	return entry, nil
}
