package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/summit/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const statsKey = "stats"

// SavedStats is one level's counters as stored on disk.
type SavedStats struct {
	Deaths      int     `json:"deaths"`
	Jumps       int     `json:"jumps"`
	Dashes      int     `json:"dashes"`
	Springs     int     `json:"springs"`
	PilesBroken int     `json:"pilesBroken"`
	Time        float64 `json:"time"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for statistics storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "summit",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadStats returns the saved counters of every level. A missing or
// unreadable save yields an empty map.
func LoadStats() map[string]SavedStats {
	stats := map[string]SavedStats{}
	if gdataManager == nil {
		return stats
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return stats
	}
	if len(data) == 0 {
		return stats
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved stats: %v", err)
		return map[string]SavedStats{}
	}
	return stats
}

// saveStats writes the level's counters, keeping the other levels' entries.
func saveStats(s *components.StatsData) {
	if gdataManager == nil || s.Level == "" {
		return
	}
	all := LoadStats()
	all[s.Level] = toSaved(s)

	data, err := json.Marshal(all)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return
	}
	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
}

// RestoreStats continues the counters saved for the current level.
func RestoreStats(ecs *ecs.ECS) {
	s := getStats(ecs)
	if s == nil {
		return
	}
	if saved, ok := LoadStats()[s.Level]; ok {
		fromSaved(s, saved)
	}
}

// SaveStats flushes the current level's counters.
func SaveStats(ecs *ecs.ECS) {
	if s := getStats(ecs); s != nil {
		saveStats(s)
	}
}

func toSaved(s *components.StatsData) SavedStats {
	return SavedStats{
		Deaths:      s.Deaths,
		Jumps:       s.Jumps,
		Dashes:      s.Dashes,
		Springs:     s.Springs,
		PilesBroken: s.PilesBroken,
		Time:        s.Time,
	}
}

func fromSaved(s *components.StatsData, saved SavedStats) {
	s.Deaths = saved.Deaths
	s.Jumps = saved.Jumps
	s.Dashes = saved.Dashes
	s.Springs = saved.Springs
	s.PilesBroken = saved.PilesBroken
	s.Time = saved.Time
}

func getStats(ecs *ecs.ECS) *components.StatsData {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Stats.Get(entry)
}

// UpdateStats advances the level clock.
func UpdateStats(ecs *ecs.ECS) {
	if s := getStats(ecs); s != nil {
		s.Time += tickDT()
	}
}
