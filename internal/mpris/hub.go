// Package mpris exposes the radio to desktop media keys over MPRIS2.
//
// D-Bus calls arrive on server goroutines. They never touch application
// state: requests are queued and delivered to the Bubble Tea loop as
// RequestMsg, and property reads answer from the last Snapshot the loop
// published.
package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Identity is the player name shown by desktop shells.
const Identity = "radiotedu"

// Request is a media key or remote control command.
type Request int

const (
	RequestPlay Request = iota
	RequestPause
	RequestPlayPause
	RequestStop
	RequestNext
	RequestPrevious
	RequestVolume
)

// String returns the request name for logs.
func (r Request) String() string {
	switch r {
	case RequestPlay:
		return "play"
	case RequestPause:
		return "pause"
	case RequestPlayPause:
		return "play-pause"
	case RequestStop:
		return "stop"
	case RequestNext:
		return "next"
	case RequestPrevious:
		return "previous"
	case RequestVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// RequestMsg delivers a request to the UI loop. Volume is set for
// RequestVolume only.
type RequestMsg struct {
	Request Request
	Volume  float64
}

// Snapshot is what remote clients see of the player.
type Snapshot struct {
	Playing     bool
	Volume      float64
	ChannelID   string
	ChannelName string
	Title       string
	ArtPath     string
}

const queueSize = 16

// hub queues requests for the UI loop and holds the published snapshot.
type hub struct {
	requests chan RequestMsg

	mu     sync.RWMutex
	snap   Snapshot
	closed bool
}

func newHub() *hub {
	return &hub{requests: make(chan RequestMsg, queueSize)}
}

// send queues a request without blocking the D-Bus goroutine. A full queue
// drops the request.
func (h *hub) send(msg RequestMsg) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.requests <- msg:
	default:
		log.Debug().Stringer("request", msg.Request).Msg("MPRIS request dropped, queue full")
	}
}

// Publish replaces the snapshot served to remote clients.
func (h *hub) Publish(s Snapshot) {
	h.mu.Lock()
	h.snap = s
	h.mu.Unlock()
}

func (h *hub) snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// WaitForRequest returns a command that delivers the next request.
func (h *hub) WaitForRequest() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-h.requests
		if !ok {
			return nil
		}
		return msg
	}
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.requests)
	}
}

// trackID derives a stable D-Bus object path for a channel.
func trackID(channelID string) string {
	f := fnv.New64a()
	f.Write([]byte(channelID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", f.Sum64())
}
