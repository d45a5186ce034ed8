// Package haptic approximates vibration feedback in a terminal.
package haptic

import (
	"io"
	"sync"
	"time"
)

// Bell rings the terminal bell once per "on" segment of a pattern.
// Patterns alternate on/off durations starting with on.
type Bell struct {
	mu    sync.Mutex
	w     io.Writer
	sleep func(time.Duration)
}

// NewBell writes bell characters to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, sleep: time.Sleep}
}

// Vibrate plays pattern in the background.
func (b *Bell) Vibrate(pattern []time.Duration) {
	if len(pattern) == 0 {
		return
	}
	p := append([]time.Duration(nil), pattern...)
	go b.ring(p)
}

func (b *Bell) ring(pattern []time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, d := range pattern {
		if i%2 == 0 {
			_, _ = io.WriteString(b.w, "\a")
		}
		b.sleep(d)
	}
}

// Nop ignores every pattern.
type Nop struct{}

func (Nop) Vibrate([]time.Duration) {}
