package talkie

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// assetPoller is implemented by loaders that deliver results on the frame
// loop, such as FSLoader.
type assetPoller interface {
	Poll() int
}

// SceneOptions configures NewScene. Zero fields take defaults.
type SceneOptions struct {
	Width, Height int
	// Catalog lists the selectable characters; nil selects DefaultCatalog.
	Catalog Catalog
	// Character is the initial character key.
	Character string
	// Weather is the initial weather mode.
	Weather WeatherMode
	// Background is the initial background color; nil selects ColorSky.
	Background *Color
	// BackgroundFade is how long SetBackgroundColor blends to a new color.
	BackgroundFade time.Duration
	// Policies overrides the weather policies.
	Policies map[WeatherMode]WeatherPolicy
	Loader    AssetLoader
	AssetsDir string
	Font      *TTFFont
	Rand      Rand
	Logger    *log.Logger
	// Now reports wall-clock time; it drives the scene clock. Defaults to
	// time.Now.
	Now func() time.Time
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// Debug logs frame timing to stderr; ShowFPS draws the debug overlay.
	Debug   bool
	ShowFPS bool
}

// Scene is the avatar widget: a background, the weather layer and the
// active character. It implements ebiten.Game.
type Scene struct {
	surface *ImageSurface
	clock   *Clock
	loader  AssetLoader
	weather *WeatherField
	host    *Host
	logger  *log.Logger
	sink    EventSink
	now     func() time.Time

	width, height int

	background     Color
	bgTween        *ColorTween
	backgroundFade time.Duration

	lastFrame time.Time
	frames    int

	script        *Script
	shots         []shot
	ScreenshotDir string

	debug   bool
	showFPS bool
	stats   debugStats
}

// NewScene creates a scene with its initial character and weather applied.
func NewScene(opts SceneOptions) *Scene {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(opts.Now().UnixNano()), 0x7a1c))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	background := ColorSky
	if opts.Background != nil {
		background = *opts.Background
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}

	start := opts.Now()
	s := &Scene{
		surface:        NewImageSurface(opts.Width, opts.Height, opts.Font),
		clock:          NewClock(start),
		loader:         opts.Loader,
		logger:         opts.Logger,
		now:            opts.Now,
		width:          opts.Width,
		height:         opts.Height,
		background:     background,
		backgroundFade: opts.BackgroundFade,
		lastFrame:      start,
		ScreenshotDir:  opts.ScreenshotDir,
		debug:          opts.Debug,
		showFPS:        opts.ShowFPS,
	}
	s.weather = NewWeatherField(float64(opts.Width), float64(opts.Height), opts.Rand, opts.Policies)
	s.host = NewHost(Env{
		Surface:   s.surface,
		Clock:     s.clock,
		Rand:      opts.Rand,
		Loader:    opts.Loader,
		AssetsDir: opts.AssetsDir,
		Logger:    opts.Logger,
	}, opts.Catalog)

	s.host.SetType(opts.Character)
	s.weather.SetWeather(opts.Weather)
	return s
}

// Host returns the character host.
func (s *Scene) Host() *Host { return s.host }

// Weather returns the weather layer.
func (s *Scene) Weather() *WeatherField { return s.weather }

// Clock returns the scene clock driving speech timers.
func (s *Scene) Clock() *Clock { return s.clock }

// Surface returns the drawing surface characters render onto.
func (s *Scene) Surface() *ImageSurface { return s.surface }

// Background returns the current background color, mid-fade if a fade is
// running.
func (s *Scene) Background() Color {
	if s.bgTween != nil {
		return s.bgTween.Value
	}
	return s.background
}

// SetEventSink forwards avatar events to sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
	s.host.SetEventSink(sink)
}

// Resize changes the canvas size and re-anchors the character.
func (s *Scene) Resize(width, height int) {
	s.width, s.height = width, height
	s.surface.SetSize(width, height)
	s.weather.Resize(float64(width), float64(height))
	s.host.Resize()
}

// SetWeather switches the weather layer.
func (s *Scene) SetWeather(mode WeatherMode) {
	s.weather.SetWeather(mode)
	if s.sink != nil {
		s.sink.EmitEvent(Event{Type: EventWeatherChanged, Character: s.host.Type(), Weather: mode})
	}
}

// SetWeatherName switches the weather by name ("clear", "rain", "snow").
// Unknown names leave the weather unchanged.
func (s *Scene) SetWeatherName(name string) error {
	mode, err := ParseWeather(name)
	if err != nil {
		s.logger.Printf("%v", err)
		return err
	}
	s.SetWeather(mode)
	return nil
}

// SetBackgroundColor changes the background to a CSS color, fading over the
// configured BackgroundFade. Invalid colors leave the background unchanged.
func (s *Scene) SetBackgroundColor(css string) error {
	c, err := ParseColor(css)
	if err != nil {
		s.logger.Printf("%v", err)
		return err
	}
	from := s.Background()
	s.background = c
	s.bgTween = nil
	if s.backgroundFade > 0 {
		s.bgTween = TweenColor(from, c, float32(s.backgroundFade.Seconds()), ease.InOutQuad)
	}
	return nil
}

// SetShowFPS toggles the FPS and state overlay.
func (s *Scene) SetShowFPS(on bool) { s.showFPS = on }

// ShowFPS reports whether the overlay is drawn.
func (s *Scene) ShowFPS() bool { return s.showFPS }

// SetTalking toggles the talking flag.
func (s *Scene) SetTalking(talking bool) { s.host.SetTalking(talking) }

// Say shows text in the character's speech bubble.
func (s *Scene) Say(text string) { s.host.Say(text) }

// SetCharacterType swaps the character, keeping any speech in progress.
func (s *Scene) SetCharacterType(key string) { s.host.SetType(key) }

// SetExpression applies an expression when the character supports it.
func (s *Scene) SetExpression(name string) bool { return s.host.SetExpression(name) }

// Update advances the scene by the wall-clock time since the previous frame.
func (s *Scene) Update() error {
	now := s.now()
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now
	s.Tick(dt)
	return nil
}

// Tick advances the scene by dt: delivers finished asset loads, runs the
// control script, fires due timers, then steps the background fade, weather
// and character.
func (s *Scene) Tick(dt time.Duration) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if p, ok := s.loader.(assetPoller); ok {
		p.Poll()
	}
	if s.script != nil {
		s.script.step(s)
	}
	s.clock.Advance(dt)

	if s.bgTween != nil {
		s.bgTween.Update(float32(dt.Seconds()))
		if s.bgTween.Done {
			s.bgTween = nil
		}
	}
	s.weather.Update()
	s.host.Update(dt)
	s.frames++

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Draw renders the background, ground, weather and character to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.surface.SetTarget(screen)
	s.drawBackdrop(s.surface)
	s.weather.Draw(s.surface)
	s.host.Draw()

	if s.showFPS {
		s.drawOverlay(screen)
	}
	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.particles = s.weather.Len()
		s.stats.timers = s.clock.Pending()
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// drawBackdrop paints the background and the ground strip.
func (s *Scene) drawBackdrop(surface Surface) {
	w, h := float64(s.width), float64(s.height)
	surface.FillRect(Rect{Width: w, Height: h}, s.Background())
	surface.FillRect(Rect{Y: h - GroundOffset, Width: w, Height: GroundOffset}, ColorGrass)
}

// Layout reports the canvas size, resizing the scene to follow the window.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// String summarizes the scene state for logs and the debug overlay.
func (s *Scene) String() string {
	return fmt.Sprintf("character=%s talking=%t weather=%s particles=%d",
		s.host.Type(), s.host.Talking(), s.weather.Mode(), s.weather.Len())
}
