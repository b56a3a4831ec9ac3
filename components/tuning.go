package components

import (
	cfg "github.com/automoto/summit/config"
	"github.com/yohamta/donburi"
)

type TuningData struct {
	Path    string
	Watcher *cfg.TuningWatcher
	Reloads int
}

var Tuning = donburi.NewComponentType[TuningData]()
