package pomodoroview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui"
	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
	"github.com/radiotedu/radiotedu-tui/internal/ui/popup"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Compile-time check that Settings implements popup.Popup.
var _ popup.Popup = (*Settings)(nil)

var settingsKeys = keymap.NewResolver(keymap.Settings)

// Settings edits the focus and break durations. It never changes the timer
// itself; every edit is sent to the root model as an action and the fields
// are refreshed from the timer through Sync.
type Settings struct {
	ui.Base
	theme  *styles.Theme
	fields [2]textinput.Model
	focus  pomodoro.Phase
}

// NewSettings creates the settings popup showing the given durations.
func NewSettings(t *styles.Theme, focusMinutes, breakMinutes int) *Settings {
	s := &Settings{theme: t}
	for i := range s.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 4
		s.fields[i] = ti
	}
	s.Sync(focusMinutes, breakMinutes)
	s.fields[pomodoro.Focus].Focus()
	s.restyle()
	return s
}

// SetTheme switches the palette.
func (s *Settings) SetTheme(t *styles.Theme) {
	s.theme = t
	s.restyle()
}

func (s *Settings) restyle() {
	for i := range s.fields {
		s.fields[i].TextStyle = s.theme.S().Title
		s.fields[i].Cursor.Style = s.theme.S().Accent
	}
}

// Sync shows the timer's current durations.
func (s *Settings) Sync(focusMinutes, breakMinutes int) {
	s.fields[pomodoro.Focus].SetValue(strconv.Itoa(focusMinutes))
	s.fields[pomodoro.Break].SetValue(strconv.Itoa(breakMinutes))
}

// Focused returns the phase whose field has the cursor.
func (s *Settings) Focused() pomodoro.Phase {
	return s.focus
}

// Value returns the raw text of a field.
func (s *Settings) Value(p pomodoro.Phase) string {
	return s.fields[p].Value()
}

// Init implements popup.Popup.
func (s *Settings) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (s *Settings) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
		return s, cmd
	}

	switch settingsKeys.Resolve(keyMsg.String()) {
	case keymap.ActionSettingsNext, keymap.ActionSettingsPrev:
		cmd := s.apply()
		s.moveFocus()
		return s, cmd
	case keymap.ActionSettingsIncrease:
		return s, s.emit(AdjustDuration{Phase: s.focus, Delta: 1})
	case keymap.ActionSettingsDecrease:
		return s, s.emit(AdjustDuration{Phase: s.focus, Delta: -1})
	case keymap.ActionSettingsApply:
		return s, s.apply()
	case keymap.ActionSettingsClose:
		// The duration must land before the popup goes away.
		return s, tea.Sequence(s.apply(), s.emit(CloseSettings{}))
	}

	// Only digits reach the fields.
	if keyMsg.Type == tea.KeyRunes && !isDigits(keyMsg.Runes) {
		return s, nil
	}
	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *Settings) apply() tea.Cmd {
	return s.emit(SetDuration{Phase: s.focus, Text: s.fields[s.focus].Value()})
}

func (s *Settings) emit(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}

func (s *Settings) moveFocus() {
	s.fields[s.focus].Blur()
	s.focus = s.focus.Other()
	s.fields[s.focus].Focus()
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}

// View implements popup.Popup.
func (s *Settings) View() string {
	st := s.theme.S()
	row := func(p pomodoro.Phase, label string) string {
		marker := "  "
		if p == s.focus {
			marker = st.Accent.Render("› ")
		}
		return marker + st.Muted.Render(label) + s.fields[p].View() + st.Subtle.Render(" min")
	}

	d := popup.New(s.theme)
	d.Title = "Timer settings"
	d.Content = strings.Join([]string{
		row(pomodoro.Focus, "Focus  "),
		row(pomodoro.Break, "Break  "),
		"",
		st.Subtle.Render("1-120 minutes"),
	}, "\n")
	d.Footer = "tab next · +/- adjust · enter apply · esc close"
	return d.Box(s.Width())
}
