package player

import "github.com/radiotedu/radiotedu-tui/internal/audio"

// SetVolume sets the output level (0.0 to 1.0). It applies immediately
// to a playing stream and is kept for the next connection.
func (e *StreamEngine) SetVolume(level float64) {
	level = audio.ClampLevel(level)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = level

	if e.volume != nil {
		vol := e.volume
		audio.Locked(func() {
			vol.Volume = audio.LevelToVolume(level)
			vol.Silent = level <= 0
		})
	}
}

// Volume returns the current output level (0.0 to 1.0).
func (e *StreamEngine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}
