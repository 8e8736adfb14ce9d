package talkie

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawOverlay prints FPS, TPS and the avatar state in the top-left corner.
func (s *Scene) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 200, 80, color.RGBA{0, 0, 0, 128}, false)

	expr := s.host.Expression()
	if expr == "" {
		expr = "-"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nchar: %s (%s)\nweather: %s x%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.host.Type(), expr,
		s.weather.Mode(), s.weather.Len(),
	))
}
