package talkie

import (
	"log"
	"time"
	"unicode/utf8"
)

// GroundOffset is the distance from the bottom of the canvas to the line the
// characters stand on. The scene paints the ground strip in this band.
const GroundOffset = 50

// maxFrameDelta caps the time a single Update may advance animations, so a
// stalled or backgrounded frame does not make poses jump.
const maxFrameDelta = 100 * time.Millisecond

// Speech timing: a said line stays up for 100ms per character, at least 2s.
const (
	minSpeechDuration = 2 * time.Second
	perRuneDuration   = 100 * time.Millisecond
)

// Character is one swappable avatar implementation. All methods are called
// from the frame loop.
type Character interface {
	// Resize recomputes the anchor from the surface size.
	Resize()
	// SetTalking toggles the talking flag without touching the speech text.
	SetTalking(talking bool)
	// Say shows text and starts talking; the text clears itself after the
	// returned duration. A later Say replaces the pending clear.
	Say(text string, opts ...SayOption) time.Duration
	// Update advances animation timers by dt, clamped to [0, 100ms].
	Update(dt time.Duration)
	// Draw renders the character and its speech bubble.
	Draw()
	Talking() bool
	SpeechText() string
}

// Expressive is implemented by characters with a named expression catalog.
type Expressive interface {
	// SetExpression switches to the named expression. Unknown names are
	// ignored and reported with false.
	SetExpression(name string) bool
	Expression() string
}

// Disposer is implemented by characters holding timers or other resources
// that must be released when the host drops them.
type Disposer interface {
	Dispose()
}

// SayOption customizes a Say call.
type SayOption func(*sayOptions)

type sayOptions struct {
	timeout    time.Duration
	hasTimeout bool
	continued  bool
}

// WithTimeout overrides the computed speech duration.
func WithTimeout(d time.Duration) SayOption {
	return func(o *sayOptions) {
		if d < 0 {
			d = 0
		}
		o.timeout = d
		o.hasTimeout = true
	}
}

// Continued marks the text as a line already on screen, so the bubble
// appears at full size instead of popping in.
func Continued() SayOption {
	return func(o *sayOptions) {
		o.continued = true
	}
}

// SpeechDuration returns how long text stays on screen by default:
// 100ms per character, never less than 2s.
func SpeechDuration(text string) time.Duration {
	return max(minSpeechDuration, time.Duration(utf8.RuneCountInString(text))*perRuneDuration)
}

// Env carries the collaborators a character factory may use.
type Env struct {
	Surface Surface
	Clock   Scheduler
	Rand    Rand
	// Loader fetches image assets. Characters without assets ignore it.
	Loader AssetLoader
	// AssetsDir is the root path characters resolve their assets against.
	AssetsDir string
	Logger    *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// Factory constructs a fresh character instance.
type Factory func(env Env) Character

// anchor is the point a character stands on: horizontally centered, on the
// ground line.
type anchor struct {
	surface Surface
	x, y    float64
}

func (a *anchor) resize() {
	w, h := a.surface.Size()
	a.x = float64(w) / 2
	a.y = float64(h) - GroundOffset
}

func clampDelta(dt time.Duration) time.Duration {
	return min(max(dt, 0), maxFrameDelta)
}
