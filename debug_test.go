package talkie

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDebugStats_Populated(t *testing.T) {
	s := newTestScene(SceneOptions{Debug: true, Weather: WeatherSnow})
	s.Say("stats")
	s.Tick(16 * time.Millisecond)
	s.Draw(ebiten.NewImage(800, 600))

	if s.stats.particles != 200 {
		t.Errorf("particles = %d, want 200", s.stats.particles)
	}
	// The host session timer and the robot's clear timer.
	if s.stats.timers != 2 {
		t.Errorf("timers = %d, want 2", s.stats.timers)
	}
}

func TestDebugLog_EverySixtyFrames(t *testing.T) {
	s := newTestScene(SceneOptions{Debug: true})

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	screen := ebiten.NewImage(800, 600)
	for i := 0; i < debugLogEvery; i++ {
		s.Tick(16 * time.Millisecond)
		s.Draw(screen)
	}

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if n := strings.Count(output, "[talkie] update:"); n != 1 {
		t.Errorf("timing lines = %d, want 1; output: %q", n, output)
	}
	if !strings.Contains(output, "character=robot") {
		t.Errorf("expected scene summary in debug output, got: %q", output)
	}
}

func TestDebugLog_OffWithoutDebug(t *testing.T) {
	s := newTestScene(SceneOptions{})
	s.Tick(16 * time.Millisecond)
	s.Draw(ebiten.NewImage(800, 600))
	if s.stats != (debugStats{}) {
		t.Errorf("stats collected without Debug: %+v", s.stats)
	}
}
