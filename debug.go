package talkie

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and population metrics.
// Only populated when the scene runs with Debug set.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	particles  int
	timers     int
}

// debugLogEvery is how many frames pass between debug lines.
const debugLogEvery = 60

// debugLog prints timing and population stats to stderr about once a second.
func (s *Scene) debugLog() {
	if !s.debug || s.frames%debugLogEvery != 0 {
		return
	}
	st := s.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[talkie] update: %v | draw: %v | total: %v\n",
		st.updateTime, st.drawTime, st.updateTime+st.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[talkie] %s | timers: %d\n", s, st.timers)
}
