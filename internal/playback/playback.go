// Package playback is the audio player: it drives one playback engine
// from user actions and engine events, and blends the user volume with
// the crossfade ratio.
package playback

import (
	"context"
	"errors"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/crossfade"
	"github.com/radiotedu/radiotedu-tui/internal/player"
)

// VolumeSteps is the number of selectable volume levels.
const VolumeSteps = 10

// StartTimeout bounds how long a play attempt may spend connecting.
const StartTimeout = 20 * time.Second

// PlayKind says what triggered a play attempt.
type PlayKind int

const (
	PlayAutoplay PlayKind = iota
	PlayToggle
	PlayRetry
)

// PlayResultMsg reports the outcome of an asynchronous play attempt.
type PlayResultMsg struct {
	Seq  uint64
	Kind PlayKind
	Err  error
}

// EventMsg carries an engine event into the update loop.
type EventMsg struct {
	Event player.Event
}

// Controller holds the playback state. It is not safe for concurrent
// use; all calls come from the update loop.
type Controller struct {
	engine player.Engine

	url         string
	playing     bool
	loading     bool
	streamError bool
	userVolume  float64
	ratio       crossfade.Ratio
	title       string

	// seq identifies the latest play attempt; older results are ignored.
	seq uint64
}

// New creates a controller for engine with the initial user volume and
// crossfade ratio. The blended volume is applied right away.
func New(engine player.Engine, volume float64, ratio int) *Controller {
	c := &Controller{
		engine:     engine,
		userVolume: clampVolume(volume),
		ratio:      crossfade.New(ratio),
	}
	c.applyVolume()
	return c
}

// Playing reports whether audio is flowing.
func (c *Controller) Playing() bool { return c.playing }

// Loading reports whether a load or play attempt is pending.
func (c *Controller) Loading() bool { return c.loading }

// StreamError reports whether the stream is marked unavailable.
func (c *Controller) StreamError() bool { return c.streamError }

// UserVolume returns the volume chosen by the user (0.0 to 1.0).
func (c *Controller) UserVolume() float64 { return c.userVolume }

// Crossfade returns the ratio last applied.
func (c *Controller) Crossfade() crossfade.Ratio { return c.ratio }

// URL returns the current stream URL.
func (c *Controller) URL() string { return c.url }

// Title returns the station's current title, if any.
func (c *Controller) Title() string { return c.title }

// Info returns the engine's stream details.
func (c *Controller) Info() player.StreamInfo { return c.engine.Info() }

// EffectiveVolume is the level sent to the engine.
func (c *Controller) EffectiveVolume() float64 {
	return crossfade.EffectiveVolume(c.userVolume, c.ratio)
}

// Mount loads url and attempts to start playback.
func (c *Controller) Mount(url string) tea.Cmd {
	return tea.Batch(c.SetStreamURL(url), c.WaitForEvent())
}

// SetStreamURL reloads the engine with url and re-attempts playback.
// Loading and error flags are reset first.
func (c *Controller) SetStreamURL(url string) tea.Cmd {
	c.url = url
	c.title = ""
	c.streamError = false
	c.playing = false
	c.loading = true
	c.engine.Load(url)
	return c.playCmd(PlayAutoplay)
}

// TogglePlay pauses or resumes. It does nothing while the stream is
// marked unavailable.
func (c *Controller) TogglePlay() tea.Cmd {
	if c.streamError {
		return nil
	}
	if c.playing || c.loading {
		c.seq++
		c.engine.Pause()
		c.playing = false
		c.loading = false
		return nil
	}
	c.loading = true
	return c.playCmd(PlayToggle)
}

// Retry reloads the stream and plays it. A failure marks the stream
// unavailable.
func (c *Controller) Retry() tea.Cmd {
	c.streamError = false
	c.playing = false
	c.loading = true
	c.engine.Load(c.url)
	return c.playCmd(PlayRetry)
}

// SetVolume sets the user volume (0.0 to 1.0).
func (c *Controller) SetVolume(level float64) {
	c.userVolume = clampVolume(level)
	c.applyVolume()
}

// SetVolumeStep selects step n of VolumeSteps.
func (c *Controller) SetVolumeStep(n int) {
	n = min(max(n, 1), VolumeSteps)
	c.SetVolume(float64(n) / VolumeSteps)
}

// SetVolumeNearest snaps level to the closest step, so volumes set from
// outside the keyboard stay on the ramp.
func (c *Controller) SetVolumeNearest(level float64) {
	c.SetVolumeStep(int(math.Round(clampVolume(level) * VolumeSteps)))
}

// AdjustVolumeStep moves the volume by delta steps.
func (c *Controller) AdjustVolumeStep(delta int) {
	c.SetVolumeStep(c.ActiveSteps() + delta)
}

// ActiveSteps counts the steps whose level is at or below the user volume.
func (c *Controller) ActiveSteps() int {
	n := 0
	for i := 1; i <= VolumeSteps; i++ {
		if float64(i)/VolumeSteps <= c.userVolume+1e-9 {
			n++
		}
	}
	return n
}

// SetCrossfade applies a new crossfade ratio.
func (c *Controller) SetCrossfade(v int) {
	c.ratio = crossfade.New(v)
	c.applyVolume()
}

func (c *Controller) applyVolume() {
	c.engine.SetVolume(c.EffectiveVolume())
}

// HandleEvent updates state from an engine event. Events for a URL other
// than the current one are ignored.
func (c *Controller) HandleEvent(ev player.Event) {
	if ev.URL != "" && ev.URL != c.url {
		return
	}
	switch ev.Kind {
	case player.EventReady:
		c.loading = false
	case player.EventPlaying:
		c.playing = true
		c.loading = false
		c.streamError = false
	case player.EventError:
		c.playing = false
		c.loading = false
		c.streamError = true
	case player.EventTitle:
		c.title = ev.Title
	}
}

// HandlePlayResult applies the result of a play attempt. Only a failed
// retry raises the stream error; other failures leave playback stopped.
func (c *Controller) HandlePlayResult(msg PlayResultMsg) {
	if msg.Seq != c.seq {
		return
	}
	c.loading = false
	if msg.Err == nil {
		c.playing = true
		return
	}

	c.playing = false
	if errors.Is(msg.Err, context.Canceled) {
		return
	}
	log.Debug().Err(msg.Err).Int("kind", int(msg.Kind)).Msg("Playback did not start")
	if msg.Kind == PlayRetry {
		c.streamError = true
	}
}

// WaitForEvent returns a command that delivers the next engine event.
func (c *Controller) WaitForEvent() tea.Cmd {
	ch := c.engine.Events()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}

// Stop pauses the engine and invalidates pending attempts.
func (c *Controller) Stop() {
	c.seq++
	c.engine.Pause()
	c.playing = false
	c.loading = false
}

// Close releases the engine.
func (c *Controller) Close() error {
	c.seq++
	c.playing = false
	c.loading = false
	return c.engine.Close()
}

func (c *Controller) playCmd(kind PlayKind) tea.Cmd {
	c.seq++
	seq := c.seq
	engine := c.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), StartTimeout)
		defer cancel()
		return PlayResultMsg{Seq: seq, Kind: kind, Err: engine.Play(ctx)}
	}
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}
