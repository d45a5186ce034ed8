// Package channel holds the static radio channel lineup.
package channel

import (
	"errors"
	"fmt"

	"github.com/radiotedu/radiotedu-tui/internal/config"
)

// ErrNoChannels is returned when a registry would be empty.
var ErrNoChannels = errors.New("no channels configured")

// Channel describes one radio station. Values are immutable once the
// registry is built.
type Channel struct {
	ID         string
	Name       string
	StreamURL  string
	Background string
	IsImage    bool
	Theme      string
}

// Registry is the ordered channel lineup, looked up by id.
type Registry struct {
	channels  []Channel
	byID      map[string]int
	defaultID string
}

// NewRegistry builds a registry. Duplicate or empty ids are rejected.
// An unknown default id falls back to the first channel.
func NewRegistry(channels []Channel, defaultID string) (*Registry, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	r := &Registry{
		channels: make([]Channel, len(channels)),
		byID:     make(map[string]int, len(channels)),
	}
	copy(r.channels, channels)

	for i, ch := range r.channels {
		if ch.ID == "" {
			return nil, fmt.Errorf("channel %d: empty id", i)
		}
		if _, dup := r.byID[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate channel id %q", ch.ID)
		}
		r.byID[ch.ID] = i
	}

	r.defaultID = r.channels[0].ID
	if _, ok := r.byID[defaultID]; ok {
		r.defaultID = defaultID
	}
	return r, nil
}

// FromConfig builds the registry from the loaded configuration.
func FromConfig(cfg *config.Config) (*Registry, error) {
	src := cfg.GetChannels()
	channels := make([]Channel, len(src))
	for i, c := range src {
		channels[i] = Channel{
			ID:         c.ID,
			Name:       c.Name,
			StreamURL:  c.StreamURL,
			Background: c.Background,
			IsImage:    c.IsImage,
			Theme:      c.Theme,
		}
	}
	return NewRegistry(channels, cfg.GetDefaultChannel())
}

// Get returns the channel with the given id.
func (r *Registry) Get(id string) (Channel, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Channel{}, false
	}
	return r.channels[i], true
}

// All returns the channels in display order.
func (r *Registry) All() []Channel {
	out := make([]Channel, len(r.channels))
	copy(out, r.channels)
	return out
}

// Len returns the number of channels.
func (r *Registry) Len() int {
	return len(r.channels)
}

// Default returns the channel selected at startup.
func (r *Registry) Default() Channel {
	return r.channels[r.byID[r.defaultID]]
}

// Index returns the display position of id, or -1.
func (r *Registry) Index(id string) int {
	i, ok := r.byID[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the channel at display position i, wrapping around.
func (r *Registry) At(i int) Channel {
	n := len(r.channels)
	return r.channels[((i%n)+n)%n]
}

// Next returns the channel after id, wrapping around.
func (r *Registry) Next(id string) Channel {
	return r.At(r.Index(id) + 1)
}

// Prev returns the channel before id, wrapping around.
func (r *Registry) Prev(id string) Channel {
	i := r.Index(id)
	if i < 0 {
		return r.channels[0]
	}
	return r.At(i - 1)
}
