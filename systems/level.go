package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// viewOffset returns the translation from world to screen coordinates.
func viewOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - (camera.Position.X + camera.Offset.X)
	camY := float64(height)/2 - (camera.Position.Y + camera.Offset.Y)
	return camX, camY, true
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	camX, camY, ok := viewOffset(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(camX, camY)
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
