package pomodoroview

import (
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
)

// Source identifies pomodoro view actions in action.Msg.
const Source = "pomodoroview"

// SetDuration asks for a phase duration typed into a settings field.
type SetDuration struct {
	Phase pomodoro.Phase
	Text  string
}

// ActionType implements action.Action.
func (SetDuration) ActionType() string { return "pomodoroview.set_duration" }

// AdjustDuration asks to move a phase duration by Delta minutes.
type AdjustDuration struct {
	Phase pomodoro.Phase
	Delta int
}

// ActionType implements action.Action.
func (AdjustDuration) ActionType() string { return "pomodoroview.adjust_duration" }

// CloseSettings asks to leave the settings view.
type CloseSettings struct{}

// ActionType implements action.Action.
func (CloseSettings) ActionType() string { return "pomodoroview.close_settings" }

// ActionMsg creates an action.Msg for a pomodoro view action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
