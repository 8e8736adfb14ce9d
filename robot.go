package talkie

import (
	"math"
	"time"
)

// Robot palette indices. 0 is transparent.
const (
	pxNone      = 0
	pxBody      = 1
	pxOutline   = 2
	pxAccent    = 3
	pxMouth     = 4
	pxHighlight = 5
)

// robotSprite is the idle stamp, one palette index per block.
var robotSprite = [...][16]uint8{
	{0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 0, 0, 0, 0, 0, 0}, // antenna top
	{0, 0, 0, 0, 0, 0, 2, 3, 3, 2, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0, 0}, // antenna stick
	{0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 0}, // head top
	{0, 0, 0, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0},
	{0, 0, 0, 2, 1, 3, 3, 1, 1, 3, 3, 1, 2, 0, 0, 0}, // eyes
	{0, 0, 0, 2, 1, 3, 3, 1, 1, 3, 3, 1, 2, 0, 0, 0},
	{0, 0, 0, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0},
	{0, 0, 0, 2, 1, 1, 1, 4, 4, 1, 1, 1, 2, 0, 0, 0}, // mouth
	{0, 0, 0, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0},
	{0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 0}, // neck
	{0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0}, // shoulders
	{0, 2, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 2, 0},
	{0, 2, 1, 1, 1, 2, 1, 5, 5, 1, 2, 1, 1, 1, 2, 0}, // chest
	{0, 2, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 2, 0},
	{0, 2, 2, 2, 2, 2, 1, 1, 1, 1, 2, 2, 2, 2, 2, 0}, // hands, waist
	{0, 0, 0, 0, 0, 2, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 2, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 2, 2, 0, 0, 2, 2, 0, 0, 0, 0, 0}, // legs
	{0, 0, 0, 0, 0, 2, 1, 2, 0, 2, 1, 2, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 2, 1, 2, 0, 2, 1, 2, 0, 0, 0, 0},
	{0, 0, 0, 0, 2, 2, 2, 2, 0, 2, 2, 2, 2, 0, 0, 0}, // feet
}

var robotPalette = [...]Color{
	pxBody:      {R: 0xC0 / 255.0, G: 0xC0 / 255.0, B: 0xC0 / 255.0, A: 1},
	pxOutline:   {R: 0x2F / 255.0, G: 0x2F / 255.0, B: 0x2F / 255.0, A: 1},
	pxAccent:    {R: 0, G: 1, B: 1, A: 1},
	pxMouth:     {R: 0x2F / 255.0, G: 0x2F / 255.0, B: 0x2F / 255.0, A: 1},
	pxHighlight: ColorWhite,
}

const (
	robotPixelScale = 12
	robotMouthRow   = 8
	// talkRate is how fast the mouth timer runs, per millisecond of talking.
	// At 60fps it advances about 0.2 per frame.
	talkRate = 0.0125
)

func isRobotMouth(r, c int) bool {
	return r == robotMouthRow && (c == 7 || c == 8)
}

// PixelRobot is the procedural pixel-art talker. While talking its mouth
// blocks flash in the accent color.
type PixelRobot struct {
	speech
	anchor
	talkTimer float64
}

// NewPixelRobot creates a robot standing on the surface's ground line.
func NewPixelRobot(env Env) Character {
	r := &PixelRobot{
		speech: speech{clock: env.Clock},
		anchor: anchor{surface: env.Surface},
	}
	r.Resize()
	return r
}

func (r *PixelRobot) Resize() {
	r.anchor.resize()
}

func (r *PixelRobot) Say(text string, opts ...SayOption) time.Duration {
	return r.say(text, opts)
}

func (r *PixelRobot) Update(dt time.Duration) {
	dt = clampDelta(dt)
	r.advance(dt)
	if r.talking {
		r.talkTimer += float64(dt) / float64(time.Millisecond) * talkRate
	} else {
		r.talkTimer = 0
	}
}

// MouthOpen reports whether the mouth is currently lit.
func (r *PixelRobot) MouthOpen() bool {
	return r.talking && math.Sin(r.talkTimer*2) > 0
}

// Bounds returns the rectangle the sprite occupies.
func (r *PixelRobot) Bounds() Rect {
	w := float64(len(robotSprite[0]) * robotPixelScale)
	h := float64(len(robotSprite) * robotPixelScale)
	return Rect{
		X:      math.Floor(r.x - w/2),
		Y:      math.Floor(r.y - h),
		Width:  w,
		Height: h,
	}
}

func (r *PixelRobot) Draw() {
	b := r.Bounds()
	mouthOpen := r.MouthOpen()
	for row := range robotSprite {
		for col, px := range robotSprite[row] {
			if mouthOpen && isRobotMouth(row, col) {
				px = pxAccent
			}
			if px == pxNone {
				continue
			}
			r.surface.FillRect(Rect{
				X:      b.X + float64(col*robotPixelScale),
				Y:      b.Y + float64(row*robotPixelScale),
				Width:  robotPixelScale,
				Height: robotPixelScale,
			}, robotPalette[px])
		}
	}
	r.drawBubble(r.surface, b.Right(), b.Y)
}
