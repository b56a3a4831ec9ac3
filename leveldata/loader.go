package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	terrainLayer = "terrain"

	groupEntities  = "Entities"
	groupHazards   = "Hazards"
	groupPlatforms = "Platforms"

	classPlayer    = "player"
	classSpawn     = "spawn"
	classSpring    = "spring"
	classSnowdrift = "snowdrift"
	classSnowPile  = "snowpile"
	classTrap      = "trap"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (tools and tests).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
	}

	parseTerrain(levelMap, level)

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupEntities:
			for _, o := range og.Objects {
				switch objectClass(o) {
				case classPlayer, classSpawn:
					// The first spawn wins; later ones are checkpoints for
					// tooling and ignored here.
					if !spawned {
						level.Spawn = Point{X: o.X, Y: o.Y}
						spawned = true
					}
				case classSpring:
					level.Springs = append(level.Springs, objectRect(o))
				case classSnowdrift, classSnowPile:
					level.SnowPiles = append(level.SnowPiles, objectRect(o))
				case classTrap:
					level.Hazards = append(level.Hazards, objectRect(o))
				}
			}
		case groupHazards:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, objectRect(o))
			}
		case groupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, objectRect(o))
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// parseTerrain turns the terrain tile layer into merged boxes. Tiles whose
// tileset entry has platform=true become one-way platforms instead.
func parseTerrain(levelMap *tiled.Map, level *Level) {
	w, h := levelMap.Width, levelMap.Height
	solid := make([]bool, w*h)
	platform := make([]bool, w*h)

	for _, layer := range levelMap.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if i >= w*h || tile.IsNil() {
				continue
			}
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil &&
				tilesetTile.Properties.GetBool("platform") {
				platform[i] = true
				continue
			}
			solid[i] = true
		}
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	level.Terrain = mergeBlocks(solid, w, h, tileW, tileH)
	level.Platforms = append(level.Platforms, mergeRows(platform, w, h, tileW, tileH)...)
}

// mergeBlocks covers the set cells of a w×h grid with few rectangles: each
// starts at the first free cell, grows right as far as it can, then down
// while the whole span below is set.
func mergeBlocks(cells []bool, w, h int, tileW, tileH float64) []Rect {
	used := make([]bool, len(cells))
	free := func(x, y int) bool {
		i := y*w + x
		return cells[i] && !used[i]
	}

	var rects []Rect
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !free(x, y) {
				continue
			}
			x2 := x
			for x2+1 < w && free(x2+1, y) {
				x2++
			}
			y2 := y
		grow:
			for y2+1 < h {
				for cx := x; cx <= x2; cx++ {
					if !free(cx, y2+1) {
						break grow
					}
				}
				y2++
			}
			for cy := y; cy <= y2; cy++ {
				for cx := x; cx <= x2; cx++ {
					used[cy*w+cx] = true
				}
			}
			rects = append(rects, Rect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: float64(x2-x+1) * tileW,
				H: float64(y2-y+1) * tileH,
			})
		}
	}
	return rects
}

// mergeRows joins horizontal runs only. Stacked platforms stay separate so
// each keeps its own top edge.
func mergeRows(cells []bool, w, h int, tileW, tileH float64) []Rect {
	var rects []Rect
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !cells[y*w+x] {
				continue
			}
			start := x
			for x+1 < w && cells[y*w+x+1] {
				x++
			}
			rects = append(rects, Rect{
				X: float64(start) * tileW,
				Y: float64(y) * tileH,
				W: float64(x-start+1) * tileW,
				H: tileH,
			})
		}
	}
	return rects
}

func objectClass(o *tiled.Object) string {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type=
	}
	return strings.ToLower(class)
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
