package player

// EventKind identifies what happened on the playback handle.
type EventKind int

const (
	// EventReady means the stream answered and audio can be decoded.
	EventReady EventKind = iota
	// EventPlaying means samples are being sent to the speaker.
	EventPlaying
	// EventError means the stream failed to connect, decode or keep going.
	EventError
	// EventTitle means the station announced a new title.
	EventTitle
)

// String returns the event name for logging.
func (k EventKind) String() string {
	switch k {
	case EventReady:
		return "ready"
	case EventPlaying:
		return "playing"
	case EventError:
		return "error"
	case EventTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Event is emitted on the engine's Events channel.
type Event struct {
	Kind  EventKind
	URL   string
	Title string
	Err   error
}
