package talkie

// EventType identifies a kind of avatar event.
type EventType uint8

const (
	EventSpeechStarted     EventType = iota // a line of speech was said
	EventSpeechEnded                        // the current speech session expired
	EventCharacterChanged                   // the active character type changed
	EventExpressionChanged                  // an expression was applied
	EventWeatherChanged                     // the weather mode changed
)

// Event carries avatar state changes to an EventSink.
type Event struct {
	Type       EventType
	Character  string      // active character key
	Text       string      // speech text for EventSpeechStarted
	Expression string      // for EventExpressionChanged
	Weather    WeatherMode // for EventWeatherChanged
	Session    uint64      // speech session id
}

// EventSink is the interface for optional event integration, for example the
// Donburi adapter in talkie/ecs. Events are emitted from the frame loop.
type EventSink interface {
	EmitEvent(event Event)
}
