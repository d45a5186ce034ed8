// Package nature plays the ambient sound blended against the radio.
package nature

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/audio"
)

// Player loops one ambience source on the shared speaker. Gain follows
// the nature share of the crossfader.
type Player struct {
	path string

	mu     sync.Mutex
	gain   float64
	ctrl   *beep.Ctrl
	volume *effects.Volume
	source io.Closer // nil for generated sources
	title  string
}

// New returns a player for the MP3 at path, or generated rain when path
// is empty.
func New(path string) *Player {
	p := &Player{path: path, title: "Rain"}
	if path != "" {
		p.title = readTitle(path)
	}
	return p
}

// Title names the ambience for display.
func (p *Player) Title() string {
	return p.title
}

// Playing reports whether the ambience is in the mixer.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

// Gain returns the current gain (0.0 to 1.0).
func (p *Player) Gain() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gain
}

// Start begins the loop. It is a no-op when already playing.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl != nil {
		return nil
	}

	if err := audio.Init(); err != nil {
		return err
	}

	var src beep.Streamer
	if p.path == "" {
		src = newBrownNoise(0)
	} else {
		loop, err := newFileLoop(p.path)
		if err != nil {
			return fmt.Errorf("open nature sound: %w", err)
		}
		src = loop
		p.source = loop
	}

	p.volume = &effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   audio.LevelToVolume(p.gain),
		Silent:   p.gain <= 0,
	}
	p.ctrl = &beep.Ctrl{Streamer: p.volume}
	audio.Play(p.ctrl)
	log.Debug().Str("source", p.title).Msg("Nature sound started")
	return nil
}

// Stop removes the ambience from the mixer.
func (p *Player) Stop() {
	p.mu.Lock()
	ctrl, source := p.ctrl, p.source
	p.ctrl = nil
	p.volume = nil
	p.source = nil
	p.mu.Unlock()

	if ctrl == nil {
		return
	}
	audio.Locked(func() {
		ctrl.Streamer = nil
	})
	if source != nil {
		if err := source.Close(); err != nil {
			log.Debug().Err(err).Msg("Closing nature sound")
		}
	}
}

// SetGain sets the ambience level (0.0 to 1.0), applied immediately.
func (p *Player) SetGain(gain float64) {
	gain = audio.ClampLevel(gain)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.gain = gain
	if p.volume != nil {
		vol := p.volume
		audio.Locked(func() {
			vol.Volume = audio.LevelToVolume(gain)
			vol.Silent = gain <= 0
		})
	}
}

// readTitle reads the title tag, falling back to the file name.
func readTitle(path string) string {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil || strings.TrimSpace(m.Title()) == "" {
		return fallback
	}
	return m.Title()
}
