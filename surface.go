package talkie

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextStyle controls how DrawText lays out a single line.
type TextStyle struct {
	Size  float64   // font size in pixels; 0 uses BubbleFontSize
	Align TextAlign // horizontal anchor
	// Middle anchors y at the vertical center of the line instead of its top.
	Middle bool
	Color  Color
	// Scale magnifies the drawn line around (x, y) without changing the
	// face; 0 draws at 1.
	Scale float64
}

// Surface is the 2D drawing target characters and weather render onto.
type Surface interface {
	// Size returns the current canvas size in pixels.
	Size() (width, height int)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, lineWidth float64, c Color)
	StrokeLine(x0, y0, x1, y1, lineWidth float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	DrawText(s string, x, y float64, style TextStyle)
	// MeasureText returns the advance width of s at the given font size.
	MeasureText(s string, size float64) float64
	// DrawImage draws the src sub-rectangle of img scaled into dst with
	// nearest-neighbor filtering. flipX mirrors the image horizontally.
	DrawImage(img *ebiten.Image, src image.Rectangle, dst Rect, flipX bool)
}

// ImageSurface is a Surface backed by an *ebiten.Image. The Scene points it at
// the screen image at the start of every Draw; the logical size is set
// separately so characters can lay out before the first frame is drawn.
type ImageSurface struct {
	target *ebiten.Image
	width  int
	height int
	font   *TTFFont
	sized  map[float64]*TTFFont
}

// NewImageSurface creates a surface of the given logical size using font for
// text. A nil font selects DefaultFont.
func NewImageSurface(width, height int, font *TTFFont) *ImageSurface {
	if font == nil {
		font = DefaultFont()
	}
	return &ImageSurface{
		width:  width,
		height: height,
		font:   font,
		sized:  map[float64]*TTFFont{font.Size(): font},
	}
}

// SetTarget sets the image subsequent draw calls render into.
func (s *ImageSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Target returns the current render target, or nil before the first frame.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.target
}

// SetSize changes the logical canvas size.
func (s *ImageSurface) SetSize(width, height int) {
	s.width, s.height = width, height
}

func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *ImageSurface) FillRect(r Rect, c Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.RGBA(), false)
}

func (s *ImageSurface) StrokeRect(r Rect, lineWidth float64, c Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(lineWidth), c.RGBA(), false)
}

func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, lineWidth float64, c Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(lineWidth), c.RGBA(), false)
}

func (s *ImageSurface) FillCircle(cx, cy, radius float64, c Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}

func (s *ImageSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.target == nil || str == "" {
		return
	}
	f := s.fontAt(style.Size)
	op := &text.DrawOptions{}
	if style.Scale > 0 && style.Scale != 1 {
		op.GeoM.Scale(style.Scale, style.Scale)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color.RGBA())
	op.LineSpacing = f.LineHeight()
	if style.Align == TextAlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	if style.Middle {
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.target, str, f.Face(), op)
}

func (s *ImageSurface) MeasureText(str string, size float64) float64 {
	w, _ := s.fontAt(size).MeasureString(str)
	return w
}

func (s *ImageSurface) DrawImage(img *ebiten.Image, src image.Rectangle, dst Rect, flipX bool) {
	if s.target == nil || img == nil || src.Dx() == 0 || src.Dy() == 0 {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	sx := dst.Width / float64(src.Dx())
	sy := dst.Height / float64(src.Dy())
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(dst.X, dst.Y)
	s.target.DrawImage(sub, op)
}

// fontAt returns the surface font at size rounded to a whole pixel, caching
// one face per rounded size.
func (s *ImageSurface) fontAt(size float64) *TTFFont {
	size = math.Round(size)
	if size <= 0 {
		size = BubbleFontSize
	}
	if f, ok := s.sized[size]; ok {
		return f
	}
	f := s.font.WithSize(size)
	s.sized[size] = f
	return f
}
