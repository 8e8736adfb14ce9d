package talkie

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the built-in characters and the scene.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	// ColorSky is the default scene background.
	ColorSky = Color{R: 0x87 / 255.0, G: 0xCE / 255.0, B: 0xEB / 255.0, A: 1}
	// ColorGrass fills the ground strip the characters stand on.
	ColorGrass = Color{R: 0x4C / 255.0, G: 0xAF / 255.0, B: 0x50 / 255.0, A: 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Range is a general-purpose min/max range.
// Used by the weather policy and the idle pose timings.
type Range struct {
	Min, Max float64
}

// Rand is the source of randomness for particles and idle animation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// WeatherMode selects the particle layer drawn behind the character.
type WeatherMode uint8

const (
	WeatherClear WeatherMode = iota // no particles
	WeatherRain                     // fast, driftless drops
	WeatherSnow                     // slow, drifting flakes
)

var weatherNames = [...]string{
	WeatherClear: "clear",
	WeatherRain:  "rain",
	WeatherSnow:  "snow",
}

func (m WeatherMode) String() string {
	if int(m) < len(weatherNames) {
		return weatherNames[m]
	}
	return fmt.Sprintf("WeatherMode(%d)", m)
}

// ParseWeather converts "clear", "rain" or "snow" (case-insensitive) to a
// WeatherMode.
func ParseWeather(s string) (WeatherMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weatherNames {
		if n == name {
			return WeatherMode(i), nil
		}
	}
	return WeatherClear, fmt.Errorf("talkie: unknown weather %q", s)
}

// TextAlign controls horizontal text alignment on a Surface.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // x is the left edge (default)
	TextAlignCenter                  // x is the horizontal center
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
