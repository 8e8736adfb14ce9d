package talkie

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenColorReachesTarget(t *testing.T) {
	from := Color{1, 1, 1, 1}
	to := Color{0, 0.5, 1, 0.5}

	g := TweenColor(from, to, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("Done at half duration")
	}
	if math.Abs(g.Value.R-0.5) > 0.01 {
		t.Errorf("R at half = %f, want ~0.5", g.Value.R)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(g.Value.R-0) > 0.001 || math.Abs(g.Value.G-0.5) > 0.001 ||
		math.Abs(g.Value.B-1) > 0.001 || math.Abs(g.Value.A-0.5) > 0.001 {
		t.Errorf("Value = %+v, want ~%+v", g.Value, to)
	}
}

func TestTweenColorZeroDuration(t *testing.T) {
	to := Color{0.2, 0.4, 0.6, 1}
	g := TweenColor(ColorWhite, to, 0, ease.Linear)
	if !g.Done || g.Value != to {
		t.Errorf("zero-duration tween = %+v", g)
	}
	g.Update(1) // no-op once done
	if g.Value != to {
		t.Errorf("Value changed after Done: %+v", g.Value)
	}
}

func TestPopTween(t *testing.T) {
	var p popTween
	if p.value() != 1 {
		t.Errorf("idle value = %v, want 1", p.value())
	}
	p.start()
	if p.value() != bubblePopFrom {
		t.Errorf("value after start = %v, want %v", p.value(), bubblePopFrom)
	}
	p.update(bubblePopSeconds / 2)
	if v := p.value(); v <= bubblePopFrom {
		t.Errorf("value mid-pop = %v, want growth", v)
	}
	p.update(bubblePopSeconds)
	if p.value() != 1 || p.tween != nil {
		t.Errorf("value after pop = %v, want 1", p.value())
	}
}
