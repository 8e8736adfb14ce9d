package talkie

import (
	"math"
	"path"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Portrait pose names.
const (
	PoseFront           = "front"
	PoseBlink           = "front_blink"
	PoseLookLeft        = "look_left"
	PoseLookRight       = "look_right"
	PoseLookLeftSlight  = "look_left_slight"
	PoseLookLeftFar     = "look_left_far"
	PoseLookRightSlight = "look_right_slight"
	PoseLookRightFar    = "look_right_far"
)

// Portrait idle timings, in milliseconds.
var (
	portraitFirstIdle = Range{1200, 3200}
	blinkHold         = Range{90, 140}
	blinkNext         = Range{1800, 4200}
	lookHold          = Range{600, 1200}
	lookNext          = Range{2600, 6500}
)

// blinkChance is the share of idle actions that are blinks rather than
// glances.
const blinkChance = 0.72

// mirroredPoses maps each right-facing pose to the left image it mirrors.
var mirroredPoses = map[string]string{
	PoseLookRight:       PoseLookLeft,
	PoseLookRightSlight: PoseLookLeftSlight,
	PoseLookRightFar:    PoseLookLeftFar,
}

// assetState tracks an asynchronous sprite load.
type assetState uint8

const (
	assetsLoading assetState = iota
	assetsReady
	assetsFailed
)

const placeholderLabel = "Loading…"

// PortraitOptions configures a Portrait.
type PortraitOptions struct {
	// Dir holds the pose images, relative to the loader's root.
	Dir string
	// Angled selects the four-image set with two glance magnitudes
	// (look_left_slight.png, look_left_far.png) instead of look_left.png.
	Angled bool
}

// Portrait is a character drawn from a few static pose images. It idles by
// blinking and glancing sideways; right-facing glances mirror the left image.
type Portrait struct {
	speech
	anchor
	idle   idlePoser
	angled bool
	images map[string]*ebiten.Image
	state  assetState
}

// NewPortrait creates a portrait and starts loading its pose images.
func NewPortrait(env Env, opts PortraitOptions) *Portrait {
	p := &Portrait{
		speech: speech{clock: env.Clock},
		anchor: anchor{surface: env.Surface},
		angled: opts.Angled,
	}
	rng := env.Rand
	p.idle = newIdlePoser(PoseFront, msBetween(rng, portraitFirstIdle), func() idleAction {
		return p.nextIdle(rng)
	})
	p.Resize()

	poses := []string{PoseFront, PoseBlink, PoseLookLeft}
	if opts.Angled {
		poses = []string{PoseFront, PoseBlink, PoseLookLeftSlight, PoseLookLeftFar}
	}
	paths := make([]string, len(poses))
	for i, pose := range poses {
		paths[i] = path.Join(env.AssetsDir, opts.Dir, pose+".png")
	}

	logger := env.logger()
	if env.Loader == nil {
		p.state = assetsFailed
		logger.Printf("talkie: no asset loader, portrait %s stays a placeholder", opts.Dir)
		return p
	}
	env.Loader.Load(paths, func(images []*ebiten.Image, err error) {
		if err != nil {
			p.state = assetsFailed
			logger.Printf("talkie: failed to load portrait sprites: %v", err)
			return
		}
		p.images = make(map[string]*ebiten.Image, len(images))
		for i, img := range images {
			p.images[poses[i]] = img
		}
		p.state = assetsReady
	})
	return p
}

// nextIdle picks a blink most of the time, otherwise a glance to a random
// side (and, for angled portraits, a random magnitude).
func (p *Portrait) nextIdle(rng Rand) idleAction {
	if rng.Float64() < blinkChance {
		return idleAction{
			pose: PoseBlink,
			hold: msBetween(rng, blinkHold),
			next: msBetween(rng, blinkNext),
		}
	}
	left := rng.Float64() < 0.5
	var pose string
	switch {
	case !p.angled && left:
		pose = PoseLookLeft
	case !p.angled:
		pose = PoseLookRight
	default:
		slight := rng.Float64() < 0.5
		switch {
		case left && slight:
			pose = PoseLookLeftSlight
		case left:
			pose = PoseLookLeftFar
		case slight:
			pose = PoseLookRightSlight
		default:
			pose = PoseLookRightFar
		}
	}
	return idleAction{
		pose: pose,
		hold: msBetween(rng, lookHold),
		next: msBetween(rng, lookNext),
	}
}

func (p *Portrait) Resize() {
	p.anchor.resize()
}

func (p *Portrait) Say(text string, opts ...SayOption) time.Duration {
	return p.say(text, opts)
}

func (p *Portrait) Update(dt time.Duration) {
	dt = clampDelta(dt)
	p.advance(dt)
	p.idle.update(dt)
}

// Pose returns the pose currently shown.
func (p *Portrait) Pose() string {
	return p.idle.pose
}

// Ready reports whether the pose images have loaded.
func (p *Portrait) Ready() bool {
	return p.state == assetsReady
}

// poseImage resolves pose to an image and whether to mirror it, falling back
// to the front image.
func (p *Portrait) poseImage(pose string) (*ebiten.Image, bool) {
	flip := false
	if left, ok := mirroredPoses[pose]; ok {
		pose = left
		flip = true
	}
	if img, ok := p.images[pose]; ok {
		return img, flip
	}
	return p.images[PoseFront], false
}

func (p *Portrait) Draw() {
	if p.state != assetsReady {
		r := placeholderRect(p.anchor)
		drawPlaceholder(p.surface, r)
		p.drawBubble(p.surface, r.Right(), r.Y)
		return
	}
	img, flip := p.poseImage(p.idle.pose)
	src := img.Bounds()
	dst := fitPortrait(p.anchor, src.Dx(), src.Dy())
	p.surface.DrawImage(img, src, dst, flip)
	p.drawBubble(p.surface, dst.Right(), dst.Y)
}

// placeholderRect is the panel shown while sprites load.
func placeholderRect(a anchor) Rect {
	cw, ch := a.surface.Size()
	w := math.Min(260, math.Floor(float64(cw)*0.45))
	h := math.Min(320, math.Floor(float64(ch)*0.55))
	return Rect{
		X:      math.Floor(a.x - w/2),
		Y:      math.Floor(a.y - h),
		Width:  w,
		Height: h,
	}
}

func drawPlaceholder(s Surface, r Rect) {
	s.FillRect(r, Color{1, 1, 1, 0.85})
	s.StrokeRect(r, 3, ColorBlack)
	s.DrawText(placeholderLabel, r.X+r.Width/2, r.Y+r.Height/2, TextStyle{
		Size:   PlaceholderFontSize,
		Align:  TextAlignCenter,
		Middle: true,
		Color:  ColorBlack,
	})
}

// fitPortrait scales a srcW×srcH image to fit within 62% of the canvas width
// and 72% of its height, standing on the anchor.
func fitPortrait(a anchor, srcW, srcH int) Rect {
	cw, ch := a.surface.Size()
	maxW := math.Floor(float64(cw) * 0.62)
	maxH := math.Floor(float64(ch) * 0.72)
	scale := math.Min(maxW/float64(srcW), maxH/float64(srcH))
	w := math.Floor(float64(srcW) * scale)
	h := math.Floor(float64(srcH) * scale)
	return Rect{
		X:      math.Floor(a.x - w/2),
		Y:      math.Floor(a.y - h),
		Width:  w,
		Height: h,
	}
}
