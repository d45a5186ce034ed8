// Package pomodoro implements the focus/break countdown timer.
package pomodoro

import "strconv"

// Status is the run state of the current phase.
//
// The timer moves between the following states:
//
//	┌────────────┐   start    ┌──────────────┐   tick(1→0)   ┌────────────┐
//	│ focus-idle │ ─────────▶ │ focus-running│ ────────────▶ │ focus-alarm│
//	└────────────┘ ◀───────── └──────────────┘               └────────────┘
//	      ▲          pause                                         │
//	      │                                                dismiss │
//	      │ reset                                                  ▼
//	┌────────────┐   start    ┌──────────────┐   tick(1→0)   ┌────────────┐
//	│ break-idle │ ─────────▶ │ break-running│ ────────────▶ │ break-alarm│
//	└────────────┘ ◀───────── └──────────────┘               └────────────┘
//	                 pause           ▲                             │
//	                                 └──── dismiss (to focus) ─────┘
//
// Dismissing an alarm is the only transition that changes the phase, and
// it auto-starts the next phase. Reset and preset changes always land in
// focus-idle. Visibility (closed/open) and the settings view are orthogonal
// to these states.
type Status int

const (
	Idle Status = iota
	Running
	Alarm
)

// String returns the status name for debugging.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Alarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// Phase is either focus or break.
type Phase int

const (
	Focus Phase = iota
	Break
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "focus"
}

// Other returns the opposite phase.
func (p Phase) Other() Phase {
	if p == Focus {
		return Break
	}
	return Focus
}

// Duration limits in minutes.
const (
	MinMinutes = 1
	MaxMinutes = 120

	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// Preset is a selectable focus/break pair.
type Preset struct {
	Focus int
	Break int
}

// Label renders the preset as "25/5".
func (p Preset) Label() string {
	return strconv.Itoa(p.Focus) + "/" + strconv.Itoa(p.Break)
}

// Toast is the in-app notification shown when a phase completes.
type Toast struct {
	Title string
	Body  string
}

// ClampMinutes limits a duration to [MinMinutes, MaxMinutes].
func ClampMinutes(m int) int {
	return min(max(m, MinMinutes), MaxMinutes)
}
