package talkie

// Speech bubble geometry, in pixels at scale 1.
const (
	bubblePadding    = 10
	bubbleTextHeight = 24
	bubbleLift       = 20 // how far the bubble's bottom edge sits below the anchor y
	bubbleBorder     = 4
	bubbleEdgeMargin = 10 // gap kept from the right edge when the bubble flips
	bubbleTailSize   = 10
)

// drawSpeechBubble draws a blocky bubble whose bottom-left corner hangs off
// the point (x, y), normally a character's top-right corner. When the bubble
// would overflow the right edge of the surface it is moved left and drawn
// without a tail. scale grows the whole bubble for the pop-in animation.
// It returns the bubble's rectangle.
func drawSpeechBubble(s Surface, x, y float64, text string, scale float64) Rect {
	if scale <= 0 {
		scale = 1
	}
	pad := bubblePadding * scale
	textW := s.MeasureText(text, BubbleFontSize) * scale

	r := Rect{
		X:      x,
		Width:  textW + pad*2,
		Height: bubbleTextHeight*scale + pad*2,
	}
	canvasW, _ := s.Size()
	flipped := r.Right() > float64(canvasW)
	if flipped {
		r.X = float64(canvasW) - r.Width - bubbleEdgeMargin
	}
	r.Y = y - r.Height + bubbleLift

	s.FillRect(r, ColorWhite)
	s.StrokeRect(r, bubbleBorder, ColorBlack)
	s.DrawText(text, r.X+pad, r.Y+pad, TextStyle{Size: BubbleFontSize, Color: ColorBlack, Scale: scale})

	if !flipped {
		tail := Rect{
			X:      r.X - 8,
			Y:      r.Y + r.Height - bubbleLift,
			Width:  bubbleTailSize,
			Height: bubbleTailSize,
		}
		s.FillRect(tail, ColorWhite)
		s.StrokeRect(tail, bubbleBorder, ColorBlack)
		// Cover the bubble border where the tail joins it.
		s.FillRect(Rect{X: r.X, Y: tail.Y, Width: bubbleBorder, Height: bubbleTailSize}, ColorWhite)
	}
	return r
}
