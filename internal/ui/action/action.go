// Package action defines the messages UI components send to the root model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents a request from a UI component. Components never
// mutate shared state themselves; the root model applies the request.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
type Msg struct {
	Source string // "crossfader", "pomodoroview", "helpbindings"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Cmd returns a command delivering a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
