package player

// State represents the connection state machine.
//
//	┌──────────┐     play      ┌────────────┐   first audio   ┌──────────┐
//	│  Stopped │ ────────────▶ │ Connecting │ ──────────────▶ │  Playing │
//	└──────────┘               └────────────┘                 └──────────┘
//	     ▲                           │                             │
//	     │     error / pause / load  │      error / pause / load   │
//	     └───────────────────────────┴─────────────────────────────┘
//
// A live stream cannot be resumed where it left off, so Pause drops the
// connection and the next Play reconnects.
type State int

const (
	Stopped State = iota
	Connecting
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Connecting:
		return "Connecting"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a connection is open or being opened.
func (s State) IsActive() bool {
	return s == Connecting || s == Playing
}
