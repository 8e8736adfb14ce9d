package talkie

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the update rate; 0 keeps Ebitengine's default of 60.
	TPS int
	// Resizable lets the user resize the window; the scene follows.
	Resizable bool
}

// Run opens a window and runs scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = scene.width, scene.height
	}
	return RunGame(scene, cfg)
}

// RunGame is Run for games that wrap a Scene, for example to add input
// handling before delegating Update and Draw.
func RunGame(game ebiten.Game, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "talkie"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(game)
}
