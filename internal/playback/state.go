package playback

// State is the player status derived from the controller flags.
type State int

const (
	StatePaused State = iota
	StateConnecting
	StatePlaying
	StateUnavailable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StateConnecting:
		return "Connecting"
	case StatePlaying:
		return "Playing"
	case StateUnavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// IsActive returns true if the stream is playing or about to.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StateConnecting
}

// State reports the current status. A stream error wins over everything.
func (c *Controller) State() State {
	switch {
	case c.streamError:
		return StateUnavailable
	case c.loading:
		return StateConnecting
	case c.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}
