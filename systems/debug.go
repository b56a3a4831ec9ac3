package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/fonts"
	"github.com/automoto/summit/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	camX, camY, ok := viewOffset(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry).World.Space
		width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
		viewX, viewY := -camX, -camY

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < viewX || obj.X > viewX+float64(width) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
				continue
			}
			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, debugColor(obj), false)
		}

		// Velocity, scaled to a tenth of a second of travel
		for _, body := range components.Space.Get(spaceEntry).World.Bodies() {
			bx, by := body.Position()
			vx, vy := body.Velocity()
			vector.StrokeLine(screen, float32(bx+camX), float32(by+camY), float32(bx+vx/10+camX), float32(by+vy/10+camY), 1, cfg.UI.DebugColors["player"], false)
		}
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Body == nil {
		return
	}

	// Wall probes
	params := cfg.Params()
	x, y := player.Body.Position()
	reach := params.HalfWidth + params.WallProbeGap
	rayColor := cfg.UI.DebugColors["ray"]
	for _, dir := range []float64{-1, 1} {
		ox := x + dir*reach
		vector.StrokeLine(screen, float32(ox+camX), float32(y+camY), float32(ox+dir*params.WallProbeLength+camX), float32(y+camY), 1, rayColor, false)
	}

	drawDebugPanel(screen, debugLines(player))
}

func debugColor(obj *resolv.Object) color.RGBA {
	for _, tag := range []string{"solid", "platform", "snowpile", "hazard", "spring"} {
		if obj.HasTags(tag) {
			return cfg.UI.DebugColors[tag]
		}
	}
	return cfg.UI.DebugColors["player"]
}

// debugLines describes the controller state, one fact per line.
func debugLines(player *components.PlayerData) []string {
	c := player.Controller
	vx, vy := player.Body.Velocity()
	return []string{
		fmt.Sprintf("state  %s", c.State),
		fmt.Sprintf("facing %s", c.Facing),
		fmt.Sprintf("ground %v (%d)", c.Grounded(), c.Ground.Counter()),
		fmt.Sprintf("wall   %s", c.Wall),
		fmt.Sprintf("lock   %.2f", c.Lockout.Seconds()),
		fmt.Sprintf("dash   %.2f", c.DashWindow.Seconds()),
		fmt.Sprintf("vel    %.0f, %.0f", vx, vy),
		fmt.Sprintf("touch  %s", touchingKinds(player.Body.Touching())),
	}
}

func touchingKinds(objs []*resolv.Object) string {
	if len(objs) == 0 {
		return "-"
	}
	kinds := make([]string, len(objs))
	for i, obj := range objs {
		kinds[i] = physics.KindOf(obj).String()
	}
	return strings.Join(kinds, ",")
}

func drawDebugPanel(screen *ebiten.Image, lines []string) {
	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	body := strings.Join(lines, "\n")
	bounds := text.BoundString(face, body)

	x := screen.Bounds().Dx() - bounds.Dx() - hudMargin - 2*hudPadding
	y := hudMargin
	vector.FillRect(screen, float32(x), float32(y),
		float32(bounds.Dx()+2*hudPadding), float32(lineHeight*len(lines)+2*hudPadding),
		cfg.UI.PanelColor, false)
	for i, line := range lines {
		text.Draw(screen, line, face, x+hudPadding, y+hudPadding+lineHeight*(i+1)-2, cfg.UI.TextColor)
	}
}
