package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoveTimeout is how long the thank-you message stays on screen.
const LoveTimeout = 3 * time.Second

// LoveTimeoutMsg hides the thank-you message if Gen is still current.
type LoveTimeoutMsg struct {
	Gen int
}

func loveTimeoutCmd(gen int) tea.Cmd {
	return tea.Tick(LoveTimeout, func(time.Time) tea.Msg {
		return LoveTimeoutMsg{Gen: gen}
	})
}
