package talkie

import (
	"path"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ExpressionNeutral is the grid portrait's resting expression.
const ExpressionNeutral = "neutral"

// ExpressionMap maps expression names to cells of the 6×6 expression sheet.
var ExpressionMap = map[string]Cell{
	"neutral":              {0, 0},
	"eyes_closed":          {0, 1},
	"winking":              {0, 2},
	"slight_smile":         {0, 3},
	"winking_smile":        {0, 4},
	"happy":                {0, 5},
	"looking_left":         {1, 0},
	"mouth_open":           {1, 1},
	"laughing":             {1, 2},
	"grinning":             {1, 3},
	"smirking_wink":        {1, 4},
	"smirk":                {1, 5},
	"sad":                  {2, 0},
	"crying":               {2, 1},
	"angry":                {2, 2},
	"furious":              {2, 3},
	"scared":               {2, 4},
	"terrified":            {2, 5},
	"happy_wink":           {3, 0},
	"laughing_eyes_closed": {3, 1},
	"surprised":            {3, 2},
	"shocked":              {3, 3},
	"confused":             {3, 4},
	"skeptical":            {3, 5},
	"embarrassed":          {4, 0},
	"blushing":             {4, 1},
	"flustered":            {4, 2},
	"determined":           {4, 3},
	"tired":                {4, 4},
	"yawning":              {4, 5},
	"pensive":              {5, 0},
	"thinking":             {5, 1},
	"disgusted":            {5, 2},
	"sick":                 {5, 3},
	"sleeping":             {5, 4},
	"shouting":             {5, 5},
}

// idleExpressions are the expressions the grid portrait cycles through on
// its own.
var idleExpressions = []string{
	"neutral",
	"eyes_closed",
	"happy",
	"winking",
	"slight_smile",
	"thinking",
	"pensive",
}

// Grid portrait idle timings, in milliseconds.
var (
	gridHold = Range{600, 1200}
	gridNext = Range{2000, 5000}
)

// GridOptions configures a GridPortrait. Zero fields take the defaults of a
// 6×6 sheet of 256×320 cells stored as grid.png.
type GridOptions struct {
	Dir        string
	Sheet      string
	CellWidth  int
	CellHeight int
	// Regions optionally holds TexturePacker JSON naming the expression
	// regions on the sheet. Expressions it does not name fall back to their
	// ExpressionMap cell.
	Regions []byte
}

func (o *GridOptions) defaults() {
	if o.Sheet == "" {
		o.Sheet = "grid.png"
	}
	if o.CellWidth <= 0 {
		o.CellWidth = 256
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 320
	}
}

// GridPortrait is a character drawn from one expression sheet. It idles
// through a few expressions and accepts external expression changes.
type GridPortrait struct {
	speech
	anchor
	idle  idlePoser
	opts  GridOptions
	atlas *Atlas
	state assetState
}

// NewGridPortrait creates a grid portrait and starts loading its sheet.
func NewGridPortrait(env Env, opts GridOptions) *GridPortrait {
	opts.defaults()
	g := &GridPortrait{
		speech: speech{clock: env.Clock},
		anchor: anchor{surface: env.Surface},
		opts:   opts,
	}
	rng := env.Rand
	g.idle = newIdlePoser(ExpressionNeutral, msBetween(rng, portraitFirstIdle), func() idleAction {
		i := int(rng.Float64() * float64(len(idleExpressions)))
		return idleAction{
			pose: idleExpressions[min(i, len(idleExpressions)-1)],
			hold: msBetween(rng, gridHold),
			next: msBetween(rng, gridNext),
		}
	})
	g.Resize()

	logger := env.logger()
	if env.Loader == nil {
		g.state = assetsFailed
		logger.Printf("talkie: no asset loader, grid portrait %s stays a placeholder", opts.Dir)
		return g
	}
	sheet := path.Join(env.AssetsDir, opts.Dir, opts.Sheet)
	env.Loader.Load([]string{sheet}, func(images []*ebiten.Image, err error) {
		if err != nil {
			g.state = assetsFailed
			logger.Printf("talkie: failed to load grid portrait sprites: %v", err)
			return
		}
		g.atlas = NewGridAtlas(images[0], opts.CellWidth, opts.CellHeight, ExpressionMap)
		if opts.Regions != nil {
			packed, err := LoadAtlas(opts.Regions, images)
			if err != nil {
				logger.Printf("talkie: ignoring expression regions: %v", err)
			} else {
				for name := range ExpressionMap {
					if r, ok := packed.Region(name); ok {
						g.atlas.regions[name] = r
					}
				}
			}
		}
		g.state = assetsReady
	})
	return g
}

func (g *GridPortrait) Resize() {
	g.anchor.resize()
}

func (g *GridPortrait) Say(text string, opts ...SayOption) time.Duration {
	return g.say(text, opts)
}

func (g *GridPortrait) Update(dt time.Duration) {
	dt = clampDelta(dt)
	g.advance(dt)
	g.idle.update(dt)
}

// SetExpression shows the named expression immediately. It is held until the
// next idle action; there is no revert timer. Unknown names are ignored.
func (g *GridPortrait) SetExpression(name string) bool {
	if _, ok := ExpressionMap[name]; !ok {
		return false
	}
	g.idle.set(name)
	return true
}

// Expression returns the expression currently shown.
func (g *GridPortrait) Expression() string {
	return g.idle.pose
}

// Ready reports whether the expression sheet has loaded.
func (g *GridPortrait) Ready() bool {
	return g.state == assetsReady
}

func (g *GridPortrait) Draw() {
	if g.state != assetsReady {
		r := placeholderRect(g.anchor)
		drawPlaceholder(g.surface, r)
		g.drawBubble(g.surface, r.Right(), r.Y)
		return
	}
	region, ok := g.atlas.Region(g.idle.pose)
	if !ok {
		region, _ = g.atlas.Region(ExpressionNeutral)
	}
	page := g.atlas.Pages[min(int(region.Page), len(g.atlas.Pages)-1)]
	dst := fitPortrait(g.anchor, int(region.Width), int(region.Height))
	g.surface.DrawImage(page, region.Bounds(), dst, false)
	g.drawBubble(g.surface, dst.Right(), dst.Y)
}
