package pomodoroview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

func newTestSettings() (*Settings, *testutil.PopupHarness) {
	s := NewSettings(styles.T(), 25, 5)
	s.SetSize(80, 24)
	return s, testutil.NewPopupHarness(s)
}

// actions runs cmd, expanding batches and sequences, and returns the
// pomodoro view actions it produced.
func actions(t *testing.T, cmd tea.Cmd) []action.Action {
	t.Helper()
	var out []action.Action
	for _, msg := range testutil.ExpandCmd(cmd) {
		if m, ok := msg.(action.Msg); ok {
			require.Equal(t, Source, m.Source)
			out = append(out, m.Action)
		}
	}
	return out
}

func TestSettings_Initial(t *testing.T) {
	s, h := newTestSettings()
	assert.Equal(t, pomodoro.Focus, s.Focused())
	assert.Equal(t, "25", s.Value(pomodoro.Focus))
	assert.Equal(t, "5", s.Value(pomodoro.Break))
	assert.True(t, h.ViewContains("Timer settings"))
	assert.True(t, h.ViewContains("Focus"))
	assert.True(t, h.ViewContains("esc close"))
}

func TestSettings_Adjust(t *testing.T) {
	_, h := newTestSettings()

	got := actions(t, h.SendKey("+"))
	assert.Equal(t, []action.Action{AdjustDuration{Phase: pomodoro.Focus, Delta: 1}}, got)

	got = actions(t, h.SendKey("-"))
	assert.Equal(t, []action.Action{AdjustDuration{Phase: pomodoro.Focus, Delta: -1}}, got)
}

func TestSettings_TabAppliesAndMovesFocus(t *testing.T) {
	s, h := newTestSettings()

	got := actions(t, h.SendKey("tab"))
	assert.Equal(t, []action.Action{SetDuration{Phase: pomodoro.Focus, Text: "25"}}, got)
	assert.Equal(t, pomodoro.Break, s.Focused())

	got = actions(t, h.SendKey("="))
	assert.Equal(t, []action.Action{AdjustDuration{Phase: pomodoro.Break, Delta: 1}}, got)

	h.SendKey("shift+tab")
	assert.Equal(t, pomodoro.Focus, s.Focused())
}

func TestSettings_TypingDigits(t *testing.T) {
	s, h := newTestSettings()

	h.SendKey("backspace")
	h.SendKey("backspace")
	h.SendKey("4")
	h.SendKey("x")
	h.SendKey("0")
	assert.Equal(t, "40", s.Value(pomodoro.Focus), "letters never reach the field")

	got := actions(t, h.SendKey("enter"))
	assert.Equal(t, []action.Action{SetDuration{Phase: pomodoro.Focus, Text: "40"}}, got)
}

func TestSettings_EscAppliesAndCloses(t *testing.T) {
	_, h := newTestSettings()
	cmd := h.SendKey("esc")
	require.NotNil(t, cmd)
	assert.True(t, testutil.IsSequence(cmd()), "apply runs before close")

	got := actions(t, cmd)
	assert.Equal(t, []action.Action{
		SetDuration{Phase: pomodoro.Focus, Text: "25"},
		CloseSettings{},
	}, got)
}

func TestSettings_Sync(t *testing.T) {
	s, _ := newTestSettings()
	s.Sync(50, 10)
	assert.Equal(t, "50", s.Value(pomodoro.Focus))
	assert.Equal(t, "10", s.Value(pomodoro.Break))
}
