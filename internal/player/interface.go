// Package player streams internet radio to the shared speaker.
package player

import "context"

// Engine is the playback handle the audio player controls. It loads a
// stream URL, starts and pauses playback, applies volume, and reports
// what happens on the wire through Events.
type Engine interface {
	// Load selects the stream to play and drops any current connection.
	Load(url string)
	// Play connects to the loaded stream and starts output. A failure is
	// returned to the caller; connection and decode failures are also
	// reported as EventError.
	Play(ctx context.Context) error
	Pause()
	SetVolume(level float64)
	State() State
	Info() StreamInfo
	Events() <-chan Event
	Close() error
}

// StreamInfo describes the live connection.
type StreamInfo struct {
	URL      string
	Title    string // from ICY metadata, empty until the station sends one
	Received int64  // bytes read from the network
}

// Verify StreamEngine implements Engine at compile time.
var _ Engine = (*StreamEngine)(nil)
