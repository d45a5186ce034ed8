package pomodoro

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// TickMsg carries the generation ticket it was scheduled with.
type TickMsg struct {
	Generation int
}

// TickCmd schedules one countdown tick for the given generation.
func TickCmd(gen int) tea.Cmd {
	return tea.Tick(TickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{Generation: gen}
	})
}

// Schedule returns the next tick command when the timer is running.
func (t *Timer) Schedule() tea.Cmd {
	if !t.running {
		return nil
	}
	return TickCmd(t.generation)
}

// HandleTick applies msg and schedules the following tick if the chain
// is still live.
func (t *Timer) HandleTick(msg TickMsg) tea.Cmd {
	if !t.Tick(msg.Generation) {
		return nil
	}
	return t.Schedule()
}
