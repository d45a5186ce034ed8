// Package pomodoroview renders the pomodoro timer panel, its minimized clock
// button and the duration settings popup.
package pomodoroview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// PanelWidth is the outer width of the timer panel.
const PanelWidth = 36

// State holds everything needed to render the timer.
type State struct {
	Phase        pomodoro.Phase
	Status       pomodoro.Status
	Clock        string
	Progress     float64
	FocusMinutes int
	BreakMinutes int
	Presets      []pomodoro.Preset
	PresetIndex  int
	FocusCount   int
	BreakCount   int
	Sound        bool
}

// NewState snapshots the timer.
func NewState(t *pomodoro.Timer) State {
	return State{
		Phase:        t.Phase(),
		Status:       t.Status(),
		Clock:        t.Clock(),
		Progress:     t.Progress(),
		FocusMinutes: t.FocusMinutes(),
		BreakMinutes: t.BreakMinutes(),
		Presets:      t.Presets(),
		PresetIndex:  t.PresetIndex(),
		FocusCount:   t.FocusCompletedCount(),
		BreakCount:   t.BreakCompletedCount(),
		Sound:        t.SoundEnabled(),
	}
}

// Header is "{preset} {phase}", e.g. "25/5 focus".
func (s State) Header() string {
	return pomodoro.Preset{Focus: s.FocusMinutes, Break: s.BreakMinutes}.Label() + " " + s.Phase.String()
}

// Render draws the full timer panel.
func Render(t *styles.Theme, s State) string {
	st := t.S()
	ic := icons.Current()
	inner := PanelWidth - 4

	sound := st.Muted.Render(icons.SoundToggle(s.Sound)) + st.Subtle.Render(" S")
	header := render.Row(st.Accent.Render(ic.Clock+" "+strings.ToUpper(s.Header())), sound, inner)

	lines := []string{header, ""}
	for line := range strings.SplitSeq(Ring(t, s.Progress, s.Clock, s.Status == pomodoro.Alarm), "\n") {
		lines = append(lines, render.Center(line, inner))
	}
	lines = append(lines,
		"",
		render.Center(statusLine(t, s), inner),
		"",
		render.Center(presetChips(t, s), inner),
		render.Center(counts(t, s), inner),
		render.Center(st.Subtle.Render("R reset · s settings · m minimize"), inner),
	)

	return styles.PanelStyle(t, s.Status == pomodoro.Running).
		Width(PanelWidth - 2).
		Render(strings.Join(lines, "\n"))
}

func statusLine(t *styles.Theme, s State) string {
	st := t.S()
	switch s.Status {
	case pomodoro.Alarm:
		return st.Warning.Render("time's up") + st.Subtle.Render(" · enter dismiss")
	case pomodoro.Running:
		return st.Base.Render(icons.PlayPause(true)+" running") + st.Subtle.Render(" · p pause")
	default:
		return st.Muted.Render(icons.PlayPause(false)+" ready") + st.Subtle.Render(" · p start")
	}
}

func presetChips(t *styles.Theme, s State) string {
	st := t.S()
	chips := make([]string, 0, len(s.Presets)+1)
	for i, p := range s.Presets {
		if i == s.PresetIndex {
			chips = append(chips, st.Active.Render(p.Label()))
		} else {
			chips = append(chips, st.Chip.Render(p.Label()))
		}
	}
	return strings.Join(chips, " ") + st.Subtle.Render(" c")
}

func counts(t *styles.Theme, s State) string {
	st := t.S()
	return st.Muted.Render(fmt.Sprintf("focus %d · break %d", s.FocusCount, s.BreakCount)) +
		st.Subtle.Render(" · C clear")
}

// Height returns the rendered height of the panel.
func Height() int {
	// border + header + gap + ring + gap + status + gap + chips + counts + hints
	return 2 + 2 + RingRows + 6
}

// Button draws the minimized timer: a single clock button.
func Button(t *styles.Theme, s State) string {
	st := t.S()
	label := icons.Current().Clock + " " + s.Clock
	var body string
	switch s.Status {
	case pomodoro.Alarm:
		body = lipgloss.NewStyle().Foreground(t.Warning).Bold(true).Render(label + " " + icons.Current().Warning)
	case pomodoro.Running:
		body = st.Accent.Render(label)
	default:
		body = st.Muted.Render(label)
	}
	return styles.PanelStyle(t, s.Status != pomodoro.Idle).Render(body)
}
