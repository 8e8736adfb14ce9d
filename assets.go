package talkie

import (
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for pose sheets
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// AssetLoader fetches images without blocking the frame loop.
type AssetLoader interface {
	// Load decodes the images at paths. done runs later on the frame loop
	// with one image per path in order, or with the first error.
	Load(paths []string, done func(images []*ebiten.Image, err error))
}

// FSLoader is an AssetLoader reading from an fs.FS. Decoding happens on
// background goroutines; results are held until Poll hands them to their
// callbacks, which the Scene does at the start of every Update.
type FSLoader struct {
	fsys     fs.FS
	mu       sync.Mutex
	finished []func()
	inflight sync.WaitGroup
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

func (l *FSLoader) Load(paths []string, done func([]*ebiten.Image, error)) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()

		decoded := make([]image.Image, len(paths))
		var g errgroup.Group
		for i, p := range paths {
			g.Go(func() error {
				img, err := decodeImage(l.fsys, p)
				if err != nil {
					return err
				}
				decoded[i] = img
				return nil
			})
		}
		err := g.Wait()

		l.mu.Lock()
		l.finished = append(l.finished, func() {
			if err != nil {
				done(nil, err)
				return
			}
			images := make([]*ebiten.Image, len(decoded))
			for i, img := range decoded {
				images[i] = ebiten.NewImageFromImage(img)
			}
			done(images, nil)
		})
		l.mu.Unlock()
	}()
}

// Poll runs the callbacks of every load that has finished since the last
// call and returns how many ran. It must be called from the frame loop.
func (l *FSLoader) Poll() int {
	l.mu.Lock()
	ready := l.finished
	l.finished = nil
	l.mu.Unlock()

	for _, fn := range ready {
		fn()
	}
	return len(ready)
}

// Wait blocks until every started load has finished decoding. Callbacks
// still only run from Poll.
func (l *FSLoader) Wait() {
	l.inflight.Wait()
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("talkie: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("talkie: decode %s: %w", path, err)
	}
	return img, nil
}
