package talkie

import "time"

// speech is the talking state every character embeds: the flag, the text in
// the bubble, and the timer that clears both.
type speech struct {
	clock   Scheduler
	text    string
	talking bool
	timer   Timer
	gen     uint64 // bumped on every say; a callback from an older say is ignored
	pop     popTween
}

func (s *speech) Talking() bool      { return s.talking }
func (s *speech) SpeechText() string { return s.text }

func (s *speech) SetTalking(talking bool) {
	s.talking = talking
}

// say shows text and (re)arms the auto-clear timer, returning its duration.
func (s *speech) say(text string, opts []SayOption) time.Duration {
	var o sayOptions
	for _, opt := range opts {
		opt(&o)
	}
	d := SpeechDuration(text)
	if o.hasTimeout {
		d = o.timeout
	}

	s.text = text
	s.talking = true
	if o.continued {
		s.pop.settle()
	} else {
		s.pop.start()
	}
	s.stop()
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(d, func() {
		if s.gen != gen {
			return
		}
		s.talking = false
		s.text = ""
		s.timer = nil
	})
	return d
}

// advance runs the bubble pop-in animation.
func (s *speech) advance(dt time.Duration) {
	s.pop.update(float32(dt.Seconds()))
}

// drawBubble draws the bubble at (x, y) when there is text to show.
func (s *speech) drawBubble(surface Surface, x, y float64) {
	if s.text == "" {
		return
	}
	drawSpeechBubble(surface, x, y, s.text, s.pop.value())
}

// stop cancels a pending auto-clear.
func (s *speech) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Dispose cancels the pending auto-clear. The host calls it when it drops a
// character.
func (s *speech) Dispose() {
	s.stop()
	s.gen++
}
