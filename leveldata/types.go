// Package leveldata parses TMX levels into collision and entity data.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import "errors"

// ErrNoSpawn is returned for a level without a spawn entity.
var ErrNoSpawn = errors.New("level has no spawn point")

// Level holds all gameplay data parsed from a TMX level file.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int
	TileSize  int

	Terrain   []Rect
	Platforms []Rect
	SnowPiles []Rect
	Hazards   []Rect
	Springs   []Rect
	Spawn     Point
}

// Rect is an axis-aligned box in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}
