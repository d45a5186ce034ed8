package crossfader

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
)

// ChangedMsg asks the root model to set the blend ratio to Value.
type ChangedMsg struct {
	Value int
}

// ActionType implements action.Action.
func (ChangedMsg) ActionType() string { return "crossfader.changed" }

// Request returns a command delivering a ChangedMsg for v.
func Request(v int) tea.Cmd {
	return action.Cmd(Source, ChangedMsg{Value: v})
}
