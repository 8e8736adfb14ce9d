package talkie

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// scriptStep is a single action in a control script.
type scriptStep struct {
	Action string `json:"action"`
	Text   string `json:"text,omitempty"`
	Value  string `json:"value,omitempty"`
	On     bool   `json:"on,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Ms     int    `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure for a control script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"say":        true,
	"talk":       true,
	"weather":    true,
	"background": true,
	"character":  true,
	"expression": true,
	"wait":       true,
	"screenshot": true,
}

// Script drives the scene's control API from a list of steps, one step per
// frame, for demos and visual regression runs. Attach it with SetScript.
type Script struct {
	steps      []scriptStep
	cursor     int
	waitFrames int
	waitUntil  time.Time
	done       bool
	errs       []error // steps that ran but could not be applied
}

// LoadScript parses a JSON control script:
//
//	{"steps": [
//		{"action": "character", "value": "grid_portrait"},
//		{"action": "say", "text": "Hello!"},
//		{"action": "wait", "ms": 1500},
//		{"action": "screenshot", "label": "hello"}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("talkie: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("talkie: parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("talkie: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a control script. Its steps run from Update, before
// timers fire.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has run and the last wait has elapsed.
// A finished script may still have failed steps; see Err.
func (r *Script) Done() bool {
	return r.done
}

// Err returns the steps that could not be applied so far, or nil.
func (r *Script) Err() error {
	return errors.Join(r.errs...)
}

func (r *Script) fail(index int, err error) {
	r.errs = append(r.errs, fmt.Errorf("talkie: script step %d: %w", index, err))
}

// step advances the script by one frame.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitFrames > 0 {
		r.waitFrames--
		return
	}
	if !r.waitUntil.IsZero() {
		if s.clock.Now().Before(r.waitUntil) {
			return
		}
		r.waitUntil = time.Time{}
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	index := r.cursor
	st := r.steps[index]
	r.cursor++

	switch st.Action {
	case "say":
		s.Say(st.Text)
	case "talk":
		s.SetTalking(st.On)
	case "weather":
		if err := s.SetWeatherName(st.Value); err != nil {
			r.fail(index, err)
		}
	case "background":
		if err := s.SetBackgroundColor(st.Value); err != nil {
			r.fail(index, err)
		}
	case "character":
		s.SetCharacterType(st.Value)
	case "expression":
		if !s.SetExpression(st.Value) {
			r.fail(index, fmt.Errorf("expression %q not applied to %s", st.Value, s.host.Type()))
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitFrames = st.Frames - 1 // this frame counts as one
		}
		if st.Ms > 0 {
			r.waitUntil = s.clock.Now().Add(time.Duration(st.Ms) * time.Millisecond)
		}
	}

	if r.cursor >= len(r.steps) && r.waitFrames == 0 && r.waitUntil.IsZero() {
		r.done = true
	}
}
