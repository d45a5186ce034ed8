// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MaxWidth returns the widest line's display width.
func MaxWidth(output string) int {
	w := 0
	for line := range strings.SplitSeq(output, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

var specialKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEsc,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"backspace":   tea.KeyBackspace,
	"ctrl+c":      tea.KeyCtrlC,
	" ":           tea.KeySpace,
	"f1":          tea.KeyF1,
	"f2":          tea.KeyF2,
	"f3":          tea.KeyF3,
	"f4":          tea.KeyF4,
}

// Key builds the key message whose String() is key.
func Key(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// IsSequence reports whether msg is the message produced by tea.Sequence.
func IsSequence(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	return t != nil && t.Kind() == reflect.Slice && t.Elem() == cmdType &&
		t != reflect.TypeOf(tea.BatchMsg(nil))
}

// ExpandCmd runs cmd and returns the messages it produces, descending into
// batches and sequences in order. Nil messages are dropped.
func ExpandCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		return expandCmds(batch)
	}
	if IsSequence(msg) {
		v := reflect.ValueOf(msg)
		cmds := make([]tea.Cmd, v.Len())
		for i := range cmds {
			cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
		}
		return expandCmds(cmds)
	}
	return []tea.Msg{msg}
}

func expandCmds(cmds []tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, c := range cmds {
		out = append(out, ExpandCmd(c)...)
	}
	return out
}
