package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/summit/components"
	"github.com/automoto/summit/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return // no player (could be dead), hold position
	}
	player := components.Player.Get(playerEntry)
	if player.Body == nil {
		return
	}
	targetX, targetY := player.Body.Position()

	levelEntry, ok := components.Level.First(e.World)
	if ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			targetX = clampAxis(targetX, float64(config.C.Width), float64(level.MapWidth))
			targetY = clampAxis(targetY, float64(config.C.Height), float64(level.MapHeight))
		}
	}

	camera.Position.X = follow(camera.Position.X, targetX)
	camera.Position.Y = follow(camera.Position.Y, targetY)
}

// follow covers a fixed fraction of the remaining distance and snaps once
// the camera is close enough.
func follow(current, target float64) float64 {
	delta := target - current
	if math.Abs(delta) < config.Camera.SnapDistance {
		return target
	}
	return current + delta*config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside the level. A level narrower than the
// screen is centered.
func clampAxis(target, screen, level float64) float64 {
	lo, hi := screen/2, level-screen/2
	if hi < lo {
		return level / 2
	}
	return math.Max(lo, math.Min(hi, target))
}

// updateScreenShake jitters the camera by the decaying shake intensity.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Offset.X, camera.Offset.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	intensity, finished := shake.Tween.Update(float32(tickDT()))
	shake.Intensity = float64(intensity)

	camera.Offset.X = (rand.Float64()*2 - 1) * shake.Intensity
	camera.Offset.Y = (rand.Float64()*2 - 1) * shake.Intensity

	if finished {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake. A weaker shake never replaces a
// stronger one that is still running.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	shake := components.ScreenShakeData{
		Tween:     gween.New(float32(intensity), 0, float32(duration), ease.Linear),
		Intensity: intensity,
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		current := components.ScreenShake.Get(cameraEntry)
		if current.Intensity > intensity {
			return
		}
		components.ScreenShake.SetValue(cameraEntry, shake)
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, shake)
}
