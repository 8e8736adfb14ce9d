package talkie

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering. Speech
// bubbles and the loading placeholder measure and draw with it.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("talkie: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying text/v2 face for direct drawing.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// WithSize returns a face sharing f's source at a different size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: f.source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Default font sizes, matching the monospace look of the speech bubble.
const (
	BubbleFontSize      = 20
	PlaceholderFontSize = 16
)

// DefaultFont returns the Go Mono face at BubbleFontSize.
func DefaultFont() *TTFFont {
	f, err := LoadTTFFont(gomono.TTF, BubbleFontSize)
	if err != nil {
		// gomono.TTF is embedded in x/image and always parses.
		panic(err)
	}
	return f
}
