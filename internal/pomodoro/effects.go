package pomodoro

import "time"

// Alert plays the audible alarm. Play must stop any tone still sounding
// before starting a new one, and the tone must end on its own after a
// bounded time.
type Alert interface {
	Play()
	Stop()
}

// NotificationSink delivers an out-of-app notification. Implementations
// degrade to a no-op when the platform refuses or is unavailable.
type NotificationSink interface {
	Notify(title, body string)
}

// Haptics requests a vibration pattern (alternating on/off durations).
type Haptics interface {
	Vibrate(pattern []time.Duration)
}

// AlarmPattern is the vibration played when a phase completes.
var AlarmPattern = []time.Duration{
	120 * time.Millisecond,
	60 * time.Millisecond,
	120 * time.Millisecond,
}

type nopAlert struct{}

func (nopAlert) Play() {}
func (nopAlert) Stop() {}

type nopSink struct{}

func (nopSink) Notify(string, string) {}

type nopHaptics struct{}

func (nopHaptics) Vibrate([]time.Duration) {}
