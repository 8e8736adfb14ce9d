package talkie

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// shot is a screenshot request waiting for the end of Draw.
type shot struct {
	label     string
	frame     int
	character string
}

// name is the file name for the shot. Frame numbers keep scripted runs
// reproducible and sorted.
func (sh shot) name() string {
	return fmt.Sprintf("%06d_%s_%s.png", sh.frame, fileLabel(sh.character), fileLabel(sh.label))
}

// Screenshot asks for the next drawn frame to be saved as a PNG in
// ScreenshotDir. It may be called from Update or Draw.
func (s *Scene) Screenshot(label string) {
	s.shots = append(s.shots, shot{label: label, frame: s.frames, character: s.host.Type()})
}

// flushScreenshots saves the frame just drawn once per pending request.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.shots) == 0 {
		return
	}
	shots := s.shots
	s.shots = nil
	if err := saveScreenshots(s.ScreenshotDir, captureFrame(screen), shots); err != nil {
		s.logger.Printf("talkie: screenshot: %v", err)
	}
}

// captureFrame copies the screen pixels. ReadPixels returns premultiplied
// RGBA, which is the layout of image.RGBA.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

// saveScreenshots writes img under dir once per shot.
func saveScreenshots(dir string, img image.Image, shots []shot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	var g errgroup.Group
	for _, sh := range shots {
		g.Go(func() error {
			return encodePNG(filepath.Join(dir, sh.name()), img)
		})
	}
	return g.Wait()
}

func encodePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// fileLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Blank labels become "unlabeled".
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
