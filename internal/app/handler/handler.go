// Package handler provides a result type and chain function for key handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/keymap"
)

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the action.
var NotHandled = Result{}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Key is a pressed key together with the action it resolved to. Action is
// empty for unbound keys.
type Key struct {
	Action keymap.Action
	Name   string
}

// Handler attempts to handle a key.
type Handler func(k Key) Result

// Chain runs handlers in order until one handles the key.
func Chain(k Key, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(k); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
