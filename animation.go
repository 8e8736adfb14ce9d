package talkie

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTween animates all four components of a Color. Call Update(dt) each
// frame and read Value.
//
// There is no global animation manager; owners call Update themselves.
type ColorTween struct {
	tweens [4]*gween.Tween
	Value  Color
	Done   bool
}

// TweenColor creates a ColorTween from one color to another over duration
// seconds using the easing function. A non-positive duration finishes on the
// first Update.
func TweenColor(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	if duration <= 0 {
		return &ColorTween{Value: to, Done: true}
	}
	g := &ColorTween{Value: from}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

// Update advances the tween by dt seconds and writes the result to Value.
func (g *ColorTween) Update(dt float32) {
	if g.Done {
		return
	}
	fields := [4]*float64{&g.Value.R, &g.Value.G, &g.Value.B, &g.Value.A}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Bubble pop-in: a new line of speech grows from bubblePopFrom to full size.
const (
	bubblePopFrom    = 0.6
	bubblePopSeconds = 0.15
)

// popTween drives the speech bubble scale.
type popTween struct {
	tween *gween.Tween
	scale float64
}

func (p *popTween) start() {
	p.tween = gween.New(bubblePopFrom, 1, bubblePopSeconds, ease.OutBack)
	p.scale = bubblePopFrom
}

// settle skips to full size.
func (p *popTween) settle() {
	p.tween = nil
	p.scale = 1
}

func (p *popTween) update(dt float32) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(dt)
	p.scale = float64(v)
	if done {
		p.tween = nil
		p.scale = 1
	}
}

// value returns the current scale; 1 when idle.
func (p *popTween) value() float64 {
	if p.tween == nil && p.scale == 0 {
		return 1
	}
	return p.scale
}
