package talkie

import (
	"image"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordSurface is a Surface that records draw calls instead of rendering.
type recordSurface struct {
	w, h       int
	fills      []Rect
	fillColors []Color
	strokes []Rect
	lines   int
	circles int
	texts   []string
	images  []drawnImage
}

type drawnImage struct {
	img   *ebiten.Image
	src   image.Rectangle
	dst   Rect
	flipX bool
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }

func (s *recordSurface) FillRect(r Rect, c Color) {
	s.fills = append(s.fills, r)
	s.fillColors = append(s.fillColors, c)
}

func (s *recordSurface) StrokeRect(r Rect, _ float64, _ Color) { s.strokes = append(s.strokes, r) }

func (s *recordSurface) StrokeLine(_, _, _, _, _ float64, _ Color) { s.lines++ }

func (s *recordSurface) FillCircle(_, _, _ float64, _ Color) { s.circles++ }

func (s *recordSurface) DrawText(text string, _, _ float64, _ TextStyle) {
	s.texts = append(s.texts, text)
}

// MeasureText uses a fixed advance of 0.6em per rune.
func (s *recordSurface) MeasureText(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * 0.6
}

func (s *recordSurface) DrawImage(img *ebiten.Image, src image.Rectangle, dst Rect, flipX bool) {
	s.images = append(s.images, drawnImage{img, src, dst, flipX})
}

func (s *recordSurface) reset() {
	*s = recordSurface{w: s.w, h: s.h}
}

// seqRand returns its values in order, cycling.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// fakeLoader records Load calls and completes them on demand.
type fakeLoader struct {
	paths [][]string
	dones []func([]*ebiten.Image, error)
}

func (l *fakeLoader) Load(paths []string, done func([]*ebiten.Image, error)) {
	l.paths = append(l.paths, paths)
	l.dones = append(l.dones, done)
}

// succeed completes load i with one w×h image per path.
func (l *fakeLoader) succeed(i, w, h int) []*ebiten.Image {
	imgs := make([]*ebiten.Image, len(l.paths[i]))
	for j := range imgs {
		imgs[j] = ebiten.NewImage(w, h)
	}
	l.dones[i](imgs, nil)
	return imgs
}

func (l *fakeLoader) fail(i int, err error) {
	l.dones[i](nil, err)
}

// recordSink collects emitted events.
type recordSink struct {
	events []Event
}

func (s *recordSink) EmitEvent(e Event) { s.events = append(s.events, e) }

func (s *recordSink) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testEnv(s Surface) (Env, *Clock) {
	clock := NewClock(testEpoch)
	return Env{
		Surface: s,
		Clock:   clock,
		Rand:    &seqRand{vals: []float64{0.5}},
	}, clock
}
