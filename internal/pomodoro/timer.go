package pomodoro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Options configures a new Timer. Zero values select the defaults.
type Options struct {
	FocusMinutes int
	BreakMinutes int
	SoundEnabled bool
	Presets      []Preset

	Alert    Alert
	Notifier NotificationSink
	Haptics  Haptics
}

// Timer is the pomodoro state machine. It is not safe for concurrent use;
// all calls are expected to come from the UI event loop.
//
// Countdown ticks are driven externally. Every transition that changes
// timing bumps Generation, and Tick ignores tickets from older
// generations, so at most one tick chain is ever live.
type Timer struct {
	focusMinutes int
	breakMinutes int

	phase            Phase
	secondsRemaining int
	running          bool
	alarm            bool

	closed       bool
	settingsOpen bool
	soundEnabled bool

	focusCompleted int
	breakCompleted int

	presets     []Preset
	presetIndex int // -1 when durations don't match a preset

	toast      *Toast
	generation int

	alert    Alert
	notifier NotificationSink
	haptics  Haptics
}

// New creates a timer in focus-idle with the given options.
func New(opts Options) *Timer {
	focus := opts.FocusMinutes
	if focus == 0 {
		focus = DefaultFocusMinutes
	}
	brk := opts.BreakMinutes
	if brk == 0 {
		brk = DefaultBreakMinutes
	}

	t := &Timer{
		focusMinutes: ClampMinutes(focus),
		breakMinutes: ClampMinutes(brk),
		soundEnabled: opts.SoundEnabled,
		presets:      opts.Presets,
		alert:        opts.Alert,
		notifier:     opts.Notifier,
		haptics:      opts.Haptics,
	}
	if len(t.presets) == 0 {
		t.presets = []Preset{{Focus: 25, Break: 5}, {Focus: 50, Break: 10}}
	}
	if t.alert == nil {
		t.alert = nopAlert{}
	}
	if t.notifier == nil {
		t.notifier = nopSink{}
	}
	if t.haptics == nil {
		t.haptics = nopHaptics{}
	}
	t.secondsRemaining = t.focusMinutes * 60
	t.syncPresetIndex()
	return t
}

// Accessors

func (t *Timer) Phase() Phase { return t.phase }
func (t *Timer) SecondsRemaining() int { return t.secondsRemaining }
func (t *Timer) Running() bool { return t.running }
func (t *Timer) AlarmActive() bool { return t.alarm }
func (t *Timer) Closed() bool { return t.closed }
func (t *Timer) SettingsOpen() bool { return t.settingsOpen }
func (t *Timer) SoundEnabled() bool { return t.soundEnabled }
func (t *Timer) FocusMinutes() int { return t.focusMinutes }
func (t *Timer) BreakMinutes() int { return t.breakMinutes }
func (t *Timer) FocusCompletedCount() int { return t.focusCompleted }
func (t *Timer) BreakCompletedCount() int { return t.breakCompleted }
func (t *Timer) Generation() int { return t.generation }
func (t *Timer) Presets() []Preset { return t.presets }

// PresetIndex returns the active preset, or -1 for custom durations.
func (t *Timer) PresetIndex() int { return t.presetIndex }

// Toast returns the pending in-app notification, if any.
func (t *Timer) Toast() (Toast, bool) {
	if t.toast == nil {
		return Toast{}, false
	}
	return *t.toast, true
}

// Status derives the run state of the current phase.
func (t *Timer) Status() Status {
	switch {
	case t.alarm:
		return Alarm
	case t.running:
		return Running
	default:
		return Idle
	}
}

// Minutes returns the configured duration of a phase.
func (t *Timer) Minutes(p Phase) int {
	if p == Break {
		return t.breakMinutes
	}
	return t.focusMinutes
}

// Progress is the elapsed fraction of the current phase in [0, 1].
// It is exactly 1 while the alarm is active.
func (t *Timer) Progress() float64 {
	if t.alarm {
		return 1
	}
	total := t.Minutes(t.phase) * 60
	if total <= 0 {
		return 0
	}
	p := 1 - float64(t.secondsRemaining)/float64(total)
	return min(max(p, 0), 1)
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.secondsRemaining/60, t.secondsRemaining%60)
}

// Start begins the countdown. It returns false when already running or
// while the alarm is active.
func (t *Timer) Start() bool {
	if t.running || t.alarm {
		return false
	}
	if t.secondsRemaining <= 0 {
		t.secondsRemaining = t.Minutes(t.phase) * 60
	}
	t.running = true
	t.generation++
	return true
}

// Pause stops the countdown and keeps the remaining time.
func (t *Timer) Pause() bool {
	if !t.running {
		return false
	}
	t.running = false
	t.generation++
	return true
}

// Toggle starts or pauses the countdown. During an alarm it dismisses it.
func (t *Timer) Toggle() {
	switch t.Status() {
	case Running:
		t.Pause()
	case Alarm:
		t.DismissAlarm()
	case Idle:
		t.Start()
	}
}

// Tick advances the countdown by one second if gen is the live ticket.
// It returns true when the tick was applied. Reaching the end stops the
// countdown and raises the alarm; the phase is left unchanged.
func (t *Timer) Tick(gen int) bool {
	if !t.running || gen != t.generation {
		return false
	}
	if t.secondsRemaining > 1 {
		t.secondsRemaining--
		return true
	}

	t.secondsRemaining = 0
	t.running = false
	t.alarm = true
	t.generation++
	t.raiseAlarm()
	return true
}

func (t *Timer) raiseAlarm() {
	finished := t.phase
	next := finished.Other()

	toast := alarmToast(finished, t.completed(finished)+1, t.Minutes(next))
	t.toast = &toast

	t.notifier.Notify(toast.Title, toast.Body)
	if t.soundEnabled {
		t.alert.Play()
	}
	t.haptics.Vibrate(AlarmPattern)
}

func alarmToast(finished Phase, ordinal, nextMinutes int) Toast {
	if finished == Focus {
		return Toast{
			Title: "Focus complete",
			Body: fmt.Sprintf("%s focus session done. Take a %d minute break.",
				humanize.Ordinal(ordinal), nextMinutes),
		}
	}
	return Toast{
		Title: "Break over",
		Body: fmt.Sprintf("%s break done. Back to focus for %d minutes.",
			humanize.Ordinal(ordinal), nextMinutes),
	}
}

func (t *Timer) completed(p Phase) int {
	if p == Break {
		return t.breakCompleted
	}
	return t.focusCompleted
}

// DismissAlarm acknowledges a finished phase: the alert and toast are
// cleared, the finished phase is counted, and the other phase starts
// running immediately. It returns false when no alarm is active.
func (t *Timer) DismissAlarm() bool {
	if !t.alarm {
		return false
	}
	t.alert.Stop()
	t.toast = nil
	t.alarm = false

	if t.phase == Focus {
		t.focusCompleted++
	} else {
		t.breakCompleted++
	}
	t.phase = t.phase.Other()
	t.secondsRemaining = t.Minutes(t.phase) * 60
	t.running = true
	t.generation++
	return true
}

// Reset returns to focus-idle with a full focus countdown and silences
// any alarm. Completed counts are kept.
func (t *Timer) Reset() {
	t.alert.Stop()
	t.toast = nil
	t.alarm = false
	t.running = false
	t.phase = Focus
	t.secondsRemaining = t.focusMinutes * 60
	t.generation++
}

// ResetCounts zeroes both completed counters.
func (t *Timer) ResetCounts() {
	t.focusCompleted = 0
	t.breakCompleted = 0
}

// AdjustDuration changes a phase duration by delta minutes, clamped.
// When the timer is idle and p is the displayed phase, the countdown is
// resynced to the new duration. A running countdown or an active alarm is
// left alone.
func (t *Timer) AdjustDuration(p Phase, delta int) {
	t.setMinutes(p, t.Minutes(p)+delta)
}

// SetDuration sets a phase duration from user text. Non-numeric input
// falls back to MinMinutes; out-of-range values are clamped.
func (t *Timer) SetDuration(p Phase, text string) {
	t.setMinutes(p, ParseMinutes(text))
}

// ParseMinutes converts user input to a valid duration.
func ParseMinutes(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return MinMinutes
	}
	return ClampMinutes(n)
}

func (t *Timer) setMinutes(p Phase, minutes int) {
	minutes = ClampMinutes(minutes)
	if p == Break {
		t.breakMinutes = minutes
	} else {
		t.focusMinutes = minutes
	}
	t.syncPresetIndex()

	if !t.running && !t.alarm && p == t.phase {
		t.secondsRemaining = minutes * 60
		return
	}
	// A running countdown keeps its remaining time, bounded by the
	// longest configured phase.
	t.secondsRemaining = min(t.secondsRemaining, max(t.focusMinutes, t.breakMinutes)*60)
}

// ApplyPreset sets both durations and resets to focus-idle.
func (t *Timer) ApplyPreset(focus, brk int) {
	t.focusMinutes = ClampMinutes(focus)
	t.breakMinutes = ClampMinutes(brk)
	t.syncPresetIndex()
	t.Reset()
}

// CyclePreset applies the preset after the active one.
func (t *Timer) CyclePreset() {
	next := 0
	if t.presetIndex >= 0 {
		next = (t.presetIndex + 1) % len(t.presets)
	}
	p := t.presets[next]
	t.ApplyPreset(p.Focus, p.Break)
}

func (t *Timer) syncPresetIndex() {
	t.presetIndex = -1
	for i, p := range t.presets {
		if p.Focus == t.focusMinutes && p.Break == t.breakMinutes {
			t.presetIndex = i
			return
		}
	}
}

// Close minimizes the timer. The countdown keeps running.
func (t *Timer) Close() {
	t.closed = true
	t.settingsOpen = false
}

// Reopen restores the full view with the live countdown.
func (t *Timer) Reopen() {
	t.closed = false
}

// OpenSettings shows the duration editor. It reopens a closed timer.
func (t *Timer) OpenSettings() {
	t.closed = false
	t.settingsOpen = true
}

// CloseSettings hides the duration editor.
func (t *Timer) CloseSettings() {
	t.settingsOpen = false
}

// ToggleSound enables or disables the alert tone. Disabling silences a
// tone that is currently sounding.
func (t *Timer) ToggleSound() {
	t.soundEnabled = !t.soundEnabled
	if !t.soundEnabled {
		t.alert.Stop()
	}
}

// Shutdown cancels the countdown and silences the alert. Used on teardown.
func (t *Timer) Shutdown() {
	t.running = false
	t.generation++
	t.alert.Stop()
}
