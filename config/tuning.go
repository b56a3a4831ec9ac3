package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional YAML overlay on top of the built-in values. Fields
// left out of the file keep their current value.
type Tuning struct {
	Player  *PlayerTuning  `yaml:"player"`
	Physics *PhysicsTuning `yaml:"physics"`
	Camera  *CameraTuning  `yaml:"camera"`
}

type PlayerTuning struct {
	RunSpeed         *float64 `yaml:"run_speed"`
	JumpSpeed        *float64 `yaml:"jump_speed"`
	DashSpeed        *float64 `yaml:"dash_speed"`
	SlideSpeed       *float64 `yaml:"slide_speed"`
	WallKickX        *float64 `yaml:"wall_kick_x"`
	WallKickY        *float64 `yaml:"wall_kick_y"`
	SpringSpeed      *float64 `yaml:"spring_speed"`
	DashDuration     *float64 `yaml:"dash_duration"`
	DashDustInterval *float64 `yaml:"dash_dust_interval"`
	WallJumpLockout  *float64 `yaml:"wall_jump_lockout"`
	GravityScale     *float64 `yaml:"gravity_scale"`
}

type PhysicsTuning struct {
	Gravity      *float64 `yaml:"gravity"`
	MaxFallSpeed *float64 `yaml:"max_fall_speed"`
}

type CameraTuning struct {
	FollowSmoothing *float64 `yaml:"follow_smoothing"`
	ShakeIntensity  *float64 `yaml:"shake_intensity"`
	ShakeDuration   *float64 `yaml:"shake_duration"`
}

// ParseTuning decodes a tuning document. Unknown keys are an error so typos
// do not silently fall back to defaults.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, err
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and decodes a tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if p := t.Player; p != nil {
		for name, v := range map[string]*float64{
			"dash_duration":      p.DashDuration,
			"dash_dust_interval": p.DashDustInterval,
			"wall_jump_lockout":  p.WallJumpLockout,
		} {
			if v != nil && *v < 0 {
				return fmt.Errorf("player.%s must not be negative", name)
			}
		}
	}
	if c := t.Camera; c != nil && c.FollowSmoothing != nil {
		if s := *c.FollowSmoothing; s <= 0 || s > 1 {
			return fmt.Errorf("camera.follow_smoothing must be in (0, 1]")
		}
	}
	return nil
}

// ApplyTuning overwrites the global configuration with every value set in t.
func ApplyTuning(t Tuning) {
	if p := t.Player; p != nil {
		set(&Player.RunSpeed, p.RunSpeed)
		set(&Player.JumpSpeed, p.JumpSpeed)
		set(&Player.DashSpeed, p.DashSpeed)
		set(&Player.SlideSpeed, p.SlideSpeed)
		set(&Player.WallKickX, p.WallKickX)
		set(&Player.WallKickY, p.WallKickY)
		set(&Player.SpringSpeed, p.SpringSpeed)
		set(&Player.DashDuration, p.DashDuration)
		set(&Player.DashDustInterval, p.DashDustInterval)
		set(&Player.WallJumpLockout, p.WallJumpLockout)
		set(&Player.GravityScale, p.GravityScale)
	}
	if p := t.Physics; p != nil {
		set(&Physics.Gravity, p.Gravity)
		set(&Physics.MaxFallSpeed, p.MaxFallSpeed)
	}
	if c := t.Camera; c != nil {
		set(&Camera.FollowSmoothing, c.FollowSmoothing)
		set(&ScreenShake.Intensity, c.ShakeIntensity)
		set(&ScreenShake.Duration, c.ShakeDuration)
	}
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
