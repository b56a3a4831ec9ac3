package systems

import (
	"fmt"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 4
	hudPadding = 2
)

// DrawHUD renders the death counter and the level clock in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	stats := getStats(ecs)
	if stats == nil {
		return
	}

	face := fonts.HUD.Get()
	line := fmt.Sprintf("deaths %d  %s", stats.Deaths, formatClock(stats.Time))
	bounds := text.BoundString(face, line)

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(bounds.Dx()+2*hudPadding), float32(bounds.Dy()+2*hudPadding),
		cfg.UI.PanelColor, false)
	text.Draw(screen, line, face, hudMargin+hudPadding-bounds.Min.X, hudMargin+hudPadding-bounds.Min.Y, cfg.UI.TextColor)
}

// formatClock renders seconds as m:ss.t
func formatClock(seconds float64) string {
	tenths := int(seconds * 10)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}
