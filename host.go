package talkie

import "time"

// speechSession is the host's record of the line currently being said. It
// outlives character swaps.
type speechSession struct {
	text      string
	expiresAt time.Time
	id        uint64
	live      bool
	timer     Timer
}

// Host owns the active character and carries speech across character swaps.
// It holds exactly one character at a time; swapping disposes the old one.
type Host struct {
	env     Env
	catalog Catalog
	sink    EventSink

	key     string
	char    Character
	talking bool
	session speechSession
}

// NewHost creates a host with no character. Call SetType to create one. A
// nil catalog selects DefaultCatalog.
func NewHost(env Env, catalog Catalog) *Host {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Host{env: env, catalog: catalog}
}

// SetEventSink attaches a sink for speech, character and expression events.
func (h *Host) SetEventSink(sink EventSink) {
	h.sink = sink
}

// Type returns the active character key.
func (h *Host) Type() string {
	return h.key
}

// Character returns the active character, or nil before the first SetType.
func (h *Host) Character() Character {
	return h.char
}

// Catalog returns the host's character registry.
func (h *Host) Catalog() Catalog {
	return h.catalog
}

// SetType switches to the character registered under key, falling back to
// DefaultCharacter for unknown keys. Switching to the active type is a no-op.
// A line still being said carries over to the new character for the time it
// has left.
func (h *Host) SetType(key string) {
	if key == h.key && h.char != nil {
		return
	}
	resolved, entry, ok := h.catalog.resolve(key)
	if !ok {
		h.env.logger().Printf("talkie: no character %q and no %q fallback registered", key, DefaultCharacter)
		return
	}
	if resolved == h.key && h.char != nil {
		return
	}

	next := entry.New(h.env)
	if d, ok := h.char.(Disposer); ok {
		d.Dispose()
	}
	h.char = next
	h.key = resolved

	now := h.env.Clock.Now()
	if h.session.live && h.session.expiresAt.After(now) {
		next.Say(h.session.text, WithTimeout(h.session.expiresAt.Sub(now)), Continued())
	} else {
		if h.session.live {
			h.endSession()
		}
		next.SetTalking(h.talking)
	}
	next.Resize()
	h.emit(Event{Type: EventCharacterChanged})
}

// Say starts a new speech session. Any pending expiry of an earlier session
// is cancelled and, should it still run, ignored.
func (h *Host) Say(text string) {
	h.talking = true
	d := SpeechDuration(text)
	if h.char != nil {
		d = h.char.Say(text)
	}

	if h.session.timer != nil {
		h.session.timer.Stop()
	}
	h.session.id++
	id := h.session.id
	h.session.text = text
	h.session.live = true
	h.session.expiresAt = h.env.Clock.Now().Add(d)
	h.session.timer = h.env.Clock.AfterFunc(d, func() {
		if h.session.id != id {
			return
		}
		h.endSession()
	})
	h.emit(Event{Type: EventSpeechStarted, Text: text})
}

// endSession clears the live session and the talking flag.
func (h *Host) endSession() {
	if h.session.timer != nil {
		h.session.timer.Stop()
		h.session.timer = nil
	}
	h.session.text = ""
	h.session.live = false
	h.session.expiresAt = time.Time{}
	h.talking = false
	h.emit(Event{Type: EventSpeechEnded})
}

// Remaining returns how long the current session has left, or 0.
func (h *Host) Remaining() time.Duration {
	if !h.session.live {
		return 0
	}
	return max(h.session.expiresAt.Sub(h.env.Clock.Now()), 0)
}

// Session returns the id of the most recent speech session.
func (h *Host) Session() uint64 {
	return h.session.id
}

// SetTalking toggles the talking flag on the active character without
// starting a session.
func (h *Host) SetTalking(talking bool) {
	h.talking = talking
	if h.char != nil {
		h.char.SetTalking(talking)
	}
}

// Talking reports whether the active character is talking.
func (h *Host) Talking() bool {
	if h.char != nil {
		return h.char.Talking()
	}
	return h.talking
}

// SpeechText returns the text in the active character's bubble.
func (h *Host) SpeechText() string {
	if h.char != nil {
		return h.char.SpeechText()
	}
	return h.session.text
}

// SetExpression forwards to characters that support expressions. It reports
// whether the expression was applied.
func (h *Host) SetExpression(name string) bool {
	e, ok := h.char.(Expressive)
	if !ok || !e.SetExpression(name) {
		return false
	}
	h.emit(Event{Type: EventExpressionChanged, Expression: name})
	return true
}

// Expression returns the active character's expression, or "" when it has
// none.
func (h *Host) Expression() string {
	if e, ok := h.char.(Expressive); ok {
		return e.Expression()
	}
	return ""
}

func (h *Host) Resize() {
	if h.char != nil {
		h.char.Resize()
	}
}

func (h *Host) Update(dt time.Duration) {
	if h.char != nil {
		h.char.Update(dt)
	}
}

func (h *Host) Draw() {
	if h.char != nil {
		h.char.Draw()
	}
}

func (h *Host) emit(e Event) {
	if h.sink == nil {
		return
	}
	e.Character = h.key
	e.Session = h.session.id
	h.sink.EmitEvent(e)
}
