package talkie

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within an atlas page.
type TextureRegion struct {
	Page   uint16 // atlas page index
	X, Y   uint16 // top-left corner within the page
	Width  uint16
	Height uint16
}

// Bounds returns the region as an image.Rectangle in page coordinates.
func (r TextureRegion) Bounds() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

// Atlas holds one or more page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the named region and whether it exists.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Cell addresses one cell of a uniform sprite grid.
type Cell struct {
	Row, Col int
}

// NewGridAtlas builds a single-page atlas from a uniform grid of
// cellW×cellH cells, naming each cell after the key that maps to it.
func NewGridAtlas(page *ebiten.Image, cellW, cellH int, cells map[string]Cell) *Atlas {
	a := &Atlas{
		Pages:   []*ebiten.Image{page},
		regions: make(map[string]TextureRegion, len(cells)),
	}
	for name, c := range cells {
		a.regions[name] = TextureRegion{
			X:      uint16(c.Col * cellW),
			Y:      uint16(c.Row * cellH),
			Width:  uint16(cellW),
			Height: uint16(cellH),
		}
	}
	return a
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists). Trimming and
// rotation are not supported; only the frame rectangle is read.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("talkie: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("talkie: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, pageIndex uint16, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("talkie: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, pageIndex)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("talkie: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, uint16(i))
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page uint16) TextureRegion {
	return TextureRegion{
		Page:   page,
		X:      uint16(f.Frame.X),
		Y:      uint16(f.Frame.Y),
		Width:  uint16(f.Frame.W),
		Height: uint16(f.Frame.H),
	}
}
