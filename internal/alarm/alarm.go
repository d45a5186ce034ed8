// Package alarm plays the pomodoro alert tone.
package alarm

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/audio"
)

const (
	toneFrequency = 880.0
	pulseOn       = 200 * time.Millisecond
	pulseOff      = 150 * time.Millisecond
	toneLevel     = 0.35
)

// Tone is a pulsed sine beep of bounded length. It implements
// pomodoro.Alert.
type Tone struct {
	length time.Duration

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

// New returns a tone that stops by itself after length.
func New(length time.Duration) *Tone {
	return &Tone{length: length}
}

// Play stops any tone still sounding and starts a new one.
func (t *Tone) Play() {
	t.Stop()

	if err := audio.Init(); err != nil {
		log.Warn().Err(err).Msg("Alert tone unavailable")
		return
	}
	s, err := pulses(audio.SampleRate, t.length)
	if err != nil {
		log.Warn().Err(err).Msg("Alert tone unavailable")
		return
	}

	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   audio.LevelToVolume(toneLevel),
	}}

	t.mu.Lock()
	t.ctrl = ctrl
	t.mu.Unlock()

	audio.Play(beep.Seq(ctrl, beep.Callback(func() {
		t.mu.Lock()
		if t.ctrl == ctrl {
			t.ctrl = nil
		}
		t.mu.Unlock()
	})))
}

// Stop silences the current tone, if any.
func (t *Tone) Stop() {
	t.mu.Lock()
	ctrl := t.ctrl
	t.ctrl = nil
	t.mu.Unlock()

	if ctrl == nil {
		return
	}
	audio.Locked(func() {
		ctrl.Streamer = nil
	})
}

// Active reports whether a tone is sounding.
func (t *Tone) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctrl != nil
}

// pulses builds on/off beeps filling length. The result always ends.
func pulses(sr beep.SampleRate, length time.Duration) (beep.Streamer, error) {
	period := pulseOn + pulseOff
	count := max(int(length/period), 1)

	parts := make([]beep.Streamer, 0, count*2)
	for range count {
		sine, err := generators.SineTone(sr, toneFrequency)
		if err != nil {
			return nil, err
		}
		parts = append(parts,
			beep.Take(sr.N(pulseOn), sine),
			generators.Silence(sr.N(pulseOff)),
		)
	}
	return beep.Seq(parts...), nil
}
