// Package audio owns the process-wide speaker. Every source (radio
// stream, nature ambience, alert tone) is resampled to SampleRate and
// mixed into the same output.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

// SampleRate is the output rate of the shared speaker.
const SampleRate = beep.SampleRate(44100)

// BufferSize is the speaker latency.
const BufferSize = time.Second / 10

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the speaker once. Later calls return the first result.
func Init() error {
	initOnce.Do(func() {
		initErr = speaker.Init(SampleRate, SampleRate.N(BufferSize))
		if initErr != nil {
			initErr = fmt.Errorf("initialize speaker: %w", initErr)
			return
		}
		log.Debug().Msgf("Speaker initialized at %d Hz, buffer %v", SampleRate, BufferSize)
	})
	return initErr
}

// Play adds s to the mixer. The speaker must be initialized.
func Play(s beep.Streamer) {
	speaker.Play(s)
}

// Locked runs fn while holding the speaker lock, for mutating streamers
// that are currently playing.
func Locked(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

// Resample converts s from rate to SampleRate when needed.
func Resample(rate beep.SampleRate, s beep.Streamer) beep.Streamer {
	if rate == SampleRate {
		return s
	}
	return beep.Resample(4, rate, SampleRate, s)
}

// LevelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means no change,
// -1 = half volume, -2 = quarter.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func LevelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// ClampLevel limits a level to [0, 1].
func ClampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}
