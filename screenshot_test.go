package talkie

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-say", "after-say"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"grid_portrait", "grid_portrait"},
		{"café", "café"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := fileLabel(tt.in); got != tt.want {
			t.Errorf("fileLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshot_RecordsFrameAndCharacter(t *testing.T) {
	s := newTestScene(SceneOptions{})
	s.Tick(16 * time.Millisecond)
	s.Tick(16 * time.Millisecond)
	s.Screenshot("a")
	s.SetCharacterType("portrait")
	s.Screenshot("b c")

	if len(s.shots) != 2 {
		t.Fatalf("shots = %d, want 2", len(s.shots))
	}
	if got := s.shots[0].name(); got != "000002_robot_a.png" {
		t.Errorf("first name = %q", got)
	}
	if got := s.shots[1].name(); got != "000002_portrait_b_c.png" {
		t.Errorf("second name = %q", got)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := newTestScene(SceneOptions{})
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestSaveScreenshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 64, G: 32, A: 128}) // premultiplied

	shots := []shot{{label: "one", frame: 7, character: "robot"}, {label: "two", frame: 7, character: "robot"}}
	if err := saveScreenshots(dir, img, shots); err != nil {
		t.Fatal(err)
	}
	for _, sh := range shots {
		f, err := os.Open(filepath.Join(dir, sh.name()))
		if err != nil {
			t.Fatal(err)
		}
		got, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", sh.name(), err)
		}
		if r, _, _, a := got.At(0, 0).RGBA(); r != 0xffff || a != 0xffff {
			t.Errorf("%s: opaque pixel r=%#x a=%#x", sh.name(), r, a)
		}
		c := color.NRGBAModel.Convert(got.At(1, 0)).(color.NRGBA)
		if c.A != 128 || c.R < 126 || c.R > 128 {
			t.Errorf("%s: translucent pixel = %+v, want straight alpha", sh.name(), c)
		}
	}
}

func TestSaveScreenshots_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := saveScreenshots(file, image.NewRGBA(image.Rect(0, 0, 1, 1)), []shot{{label: "x"}})
	if err == nil {
		t.Error("saving under a regular file succeeded")
	}
}
