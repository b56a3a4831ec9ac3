package config

import (
	"image/color"

	"github.com/automoto/summit/movement"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int // window pixels per game pixel
	TPS    int
	Title  string
	Level  string // level name without .tmx; empty picks the first one
}

// PlayerConfig contains all player-related configuration values.
// Speeds are px/s and times are seconds.
type PlayerConfig struct {
	// Movement
	RunSpeed    float64
	JumpSpeed   float64
	DashSpeed   float64
	SlideSpeed  float64 // downward speed while climbing
	WallKickX   float64
	WallKickY   float64
	SpringSpeed float64

	// Timers
	DashDuration     float64
	DashDustInterval float64
	WallJumpLockout  float64

	StandThreshold float64 // |vx| below this counts as standing
	GravityScale   float64

	// Wall probes
	WallProbeGap    float64 // distance from the body side to the ray origin
	WallProbeLength float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	Color     color.RGBA
	DashColor color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // px/s²
	MaxFallSpeed float64 // px/s
	CellSize     int     // resolv space cell size, one tile
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance covered per tick
	SnapDistance    float64 // closer than this the camera snaps onto the target
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Intensity float64 // pixels
	Duration  float64 // seconds
}

// DustConfig contains dust puff configuration
type DustConfig struct {
	Lifetime  float64 // seconds
	Size      float64
	Rise      float64 // px/s
	JumpColor color.RGBA
}

// DebrisConfig contains snow chunk configuration
type DebrisConfig struct {
	Gravity     float64
	Radius      float64
	Mass        float64
	Elasticity  float64
	Friction    float64
	Speed       float64
	Life        float64
	MaxChunks   int
	PileChunks  int // chunks per broken snow pile
	DeathChunks int // chunks per death burst
	SnowColor   color.RGBA
}

// SpringConfig contains spring animation configuration
type SpringConfig struct {
	Compress    float64 // fraction of the height squashed on launch
	ReboundTime float64 // seconds
	Color       color.RGBA
}

// HairConfig contains hair trail configuration
type HairConfig struct {
	Length int // number of remembered positions
	Radius float64
	Color  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool
	Tuning  string // path of the YAML tuning file, empty to disable
}

// UIConfig contains HUD and overlay configuration
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	TextColor     color.RGBA
	PanelColor    color.RGBA

	DebugColors map[string]color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Dust DustConfig
var Debris DebrisConfig
var Spring SpringConfig
var Hair HairConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Snow         = color.RGBA{R: 235, G: 240, B: 255, A: 255}
	Sky          = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Cyan         = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 180,
		Scale:  4,
		TPS:    60,
		Title:  "Summit",
	}

	// Movement tuning lives with the controller; only the body and colors
	// are set here.
	d := movement.DefaultParams()
	Player = PlayerConfig{
		RunSpeed:    d.RunSpeed,
		JumpSpeed:   d.JumpSpeed,
		DashSpeed:   d.DashSpeed,
		SlideSpeed:  d.SlideSpeed,
		WallKickX:   d.WallKickX,
		WallKickY:   d.WallKickY,
		SpringSpeed: d.SpringSpeed,

		DashDuration:     d.DashDuration,
		DashDustInterval: d.DashDustInterval,
		WallJumpLockout:  d.WallJumpLockout,

		StandThreshold: d.StandThreshold,
		GravityScale:   d.GravityScale,

		WallProbeGap:    d.WallProbeGap,
		WallProbeLength: d.WallProbeLength,

		CollisionWidth:  d.HalfWidth * 2,
		CollisionHeight: 12,

		Color:     color.RGBA{R: 90, G: 200, B: 120, A: 255},
		DashColor: color.RGBA{R: 80, G: 160, B: 255, A: 255},
	}

	Physics = PhysicsConfig{
		Gravity:      981,
		MaxFallSpeed: 400,
		CellSize:     8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.05,
		SnapDistance:    0.1,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 1,
		Duration:  0.3,
	}

	Dust = DustConfig{
		Lifetime:  0.25,
		Size:      3,
		Rise:      8,
		JumpColor: color.RGBA{R: 220, G: 220, B: 230, A: 200},
	}

	Debris = DebrisConfig{
		Gravity:     600,
		Radius:      1,
		Mass:        1,
		Elasticity:  0.3,
		Friction:    0.8,
		Speed:       90,
		Life:        1.2,
		MaxChunks:   64,
		PileChunks:  12,
		DeathChunks: 16,
		SnowColor:   Snow,
	}

	Spring = SpringConfig{
		Compress:    0.5,
		ReboundTime: 0.25,
		Color:       Orange,
	}

	Hair = HairConfig{
		Length: 5,
		Radius: 2,
		Color:  color.RGBA{R: 200, G: 70, B: 60, A: 255},
	}

	UI = UIConfig{
		HUDFontSize:   8,
		DebugFontSize: 6,
		TextColor:     White,
		PanelColor:    BlackOverlay,
		DebugColors: map[string]color.RGBA{
			"solid":    Green,
			"platform": Yellow,
			"snowpile": Cyan,
			"hazard":   Red,
			"spring":   Orange,
			"player":   Magenta,
			"ray":      White,
		},
	}
}

// Params converts the player configuration into controller parameters.
func Params() movement.Params {
	return movement.Params{
		RunSpeed:         Player.RunSpeed,
		JumpSpeed:        Player.JumpSpeed,
		DashSpeed:        Player.DashSpeed,
		SlideSpeed:       Player.SlideSpeed,
		WallKickX:        Player.WallKickX,
		WallKickY:        Player.WallKickY,
		SpringSpeed:      Player.SpringSpeed,
		GravityScale:     Player.GravityScale,
		DashDuration:     Player.DashDuration,
		DashDustInterval: Player.DashDustInterval,
		WallJumpLockout:  Player.WallJumpLockout,
		StandThreshold:   Player.StandThreshold,
		HalfWidth:        Player.CollisionWidth / 2,
		WallProbeGap:     Player.WallProbeGap,
		WallProbeLength:  Player.WallProbeLength,
	}
}
