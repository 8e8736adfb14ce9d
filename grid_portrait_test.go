package talkie

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"
)

func newTestGrid(opts GridOptions) (*GridPortrait, *recordSurface, *fakeLoader, *bytes.Buffer) {
	s := newRecordSurface(800, 600)
	env, _ := testEnv(s)
	loader := &fakeLoader{}
	var logs bytes.Buffer
	env.Loader = loader
	env.AssetsDir = "assets"
	env.Logger = log.New(&logs, "", 0)
	if opts.Dir == "" {
		opts.Dir = "characters/grid"
	}
	return NewGridPortrait(env, opts), s, loader, &logs
}

func TestExpressionMap_CoversSheet(t *testing.T) {
	if len(ExpressionMap) != 36 {
		t.Fatalf("ExpressionMap has %d entries, want 36", len(ExpressionMap))
	}
	seen := make(map[Cell]string)
	for name, c := range ExpressionMap {
		if c.Row < 0 || c.Row > 5 || c.Col < 0 || c.Col > 5 {
			t.Errorf("%s: cell %+v outside the 6x6 sheet", name, c)
		}
		if other, dup := seen[c]; dup {
			t.Errorf("%s and %s share cell %+v", name, other, c)
		}
		seen[c] = name
	}
	for _, name := range idleExpressions {
		if _, ok := ExpressionMap[name]; !ok {
			t.Errorf("idle expression %q is not on the sheet", name)
		}
	}
}

func TestGridPortrait_LoadsSheet(t *testing.T) {
	g, _, loader, _ := newTestGrid(GridOptions{})
	if len(loader.paths) != 1 || len(loader.paths[0]) != 1 ||
		loader.paths[0][0] != "assets/characters/grid/grid.png" {
		t.Fatalf("paths = %v", loader.paths)
	}
	if g.Ready() {
		t.Error("Ready before load")
	}
	loader.succeed(0, 1536, 1920)
	if !g.Ready() {
		t.Error("not Ready after load")
	}
}

func TestGridPortrait_SetExpression(t *testing.T) {
	g, _, _, _ := newTestGrid(GridOptions{})
	if g.Expression() != ExpressionNeutral {
		t.Fatalf("initial expression = %q", g.Expression())
	}
	if g.SetExpression("not_an_expression") {
		t.Error("unknown expression accepted")
	}
	if g.Expression() != ExpressionNeutral {
		t.Errorf("unknown expression changed state to %q", g.Expression())
	}
	if !g.SetExpression("happy") || g.Expression() != "happy" {
		t.Errorf("SetExpression(happy): expression = %q", g.Expression())
	}
}

func TestGridPortrait_SetExpressionHeldUntilIdle(t *testing.T) {
	// seqRand 0.5: first idle at 2200ms, then idleExpressions[3] held 900ms.
	g, _, _, _ := newTestGrid(GridOptions{})
	g.SetExpression("furious")

	step(g, 21)
	if g.Expression() != "furious" {
		t.Fatalf("expression reverted to %q before the idle countdown", g.Expression())
	}
	step(g, 1)
	if want := idleExpressions[3]; g.Expression() != want {
		t.Fatalf("expression = %q, want idle %q", g.Expression(), want)
	}
	step(g, 9)
	if g.Expression() != ExpressionNeutral {
		t.Errorf("expression = %q after idle hold, want neutral", g.Expression())
	}
}

func TestGridPortrait_DrawsExpressionCell(t *testing.T) {
	g, s, loader, _ := newTestGrid(GridOptions{})
	imgs := loader.succeed(0, 1536, 1920)
	g.SetExpression("sad")
	g.Draw()

	if len(s.images) != 1 {
		t.Fatalf("drew %d images, want 1", len(s.images))
	}
	d := s.images[0]
	if d.img != imgs[0] {
		t.Error("drew the wrong page")
	}
	if want := (TextureRegion{X: 0, Y: 640, Width: 256, Height: 320}).Bounds(); d.src != want {
		t.Errorf("src = %v, want %v", d.src, want)
	}
	if d.flipX {
		t.Error("grid portrait should not mirror")
	}
}

func TestGridPortrait_PackedRegionsOverrideCells(t *testing.T) {
	g, s, loader, _ := newTestGrid(GridOptions{Regions: []byte(singlePageJSON)})
	loader.succeed(0, 1536, 1920)
	g.SetExpression("sad")
	g.Draw()
	if want := (TextureRegion{X: 256, Width: 240, Height: 300}).Bounds(); s.images[0].src != want {
		t.Errorf("src = %v, want the packed region %v", s.images[0].src, want)
	}
}

func TestGridPortrait_BadRegionsFallBackToGrid(t *testing.T) {
	g, s, loader, logs := newTestGrid(GridOptions{Regions: []byte("{")})
	loader.succeed(0, 1536, 1920)
	if !g.Ready() {
		t.Fatal("bad region JSON should not fail the sheet")
	}
	if !strings.Contains(logs.String(), "ignoring expression regions") {
		t.Errorf("log = %q", logs.String())
	}
	g.Draw()
	if len(s.images) != 1 {
		t.Errorf("drew %d images, want 1", len(s.images))
	}
}

func TestGridPortrait_LoadFailure(t *testing.T) {
	g, s, loader, logs := newTestGrid(GridOptions{})
	loader.fail(0, errors.New("missing"))
	if g.Ready() {
		t.Fatal("Ready after failure")
	}
	if !strings.Contains(logs.String(), "failed to load grid portrait sprites") {
		t.Errorf("log = %q", logs.String())
	}
	g.SetExpression("happy")
	g.Say("still here")
	g.Update(16 * time.Millisecond)
	g.Draw()
	if len(s.texts) != 2 || s.texts[0] != placeholderLabel || s.texts[1] != "still here" {
		t.Errorf("texts = %v", s.texts)
	}
}
