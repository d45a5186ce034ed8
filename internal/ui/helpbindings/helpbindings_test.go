package helpbindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

var allContexts = []string{"global", "channel", "player", "crossfader", "pomodoro", "settings"}

func newTestHelpPopup(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New(styles.ForName("jazz"))
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msg)
	assert.Equal(t, "helpbindings", actionMsg.Source)
	assert.IsType(t, Close{}, actionMsg.Action)
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup([]string{"global"}, 24)
			h.SendKey(key)
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(allContexts, 20)

	h.SendKey("down")
	h.SendKey("j")
	assert.Equal(t, 2, m.scrollOffset)

	h.SendKey("up")
	assert.Equal(t, 1, m.scrollOffset)

	h.SendKey("k")
	h.SendKey("k")
	assert.Equal(t, 0, m.scrollOffset, "scroll stops at the top")
}

func TestHelpBindings_ScrollStopsAtBottom(t *testing.T) {
	m, h := newTestHelpPopup(allContexts, 20)
	for range 200 {
		h.SendKey("j")
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	assert.Positive(t, m.scrollOffset)
}

func TestHelpBindings_NoScrollWhenContentFits(t *testing.T) {
	m, h := newTestHelpPopup([]string{"global"}, 40)
	h.SendKey("j")
	assert.Equal(t, 0, m.scrollOffset)
	assert.True(t, h.ViewContains("?/esc close"))
	assert.False(t, h.ViewContains("j/k scroll"))
}

func TestHelpBindings_ViewShowsCategories(t *testing.T) {
	_, h := newTestHelpPopup([]string{"global", "pomodoro"}, 60)

	assert.True(t, h.ViewContains("Help"))
	assert.True(t, h.ViewContains("Global"))
	assert.True(t, h.ViewContains("Pomodoro"))
	assert.True(t, h.ViewContains("Quit"))
	assert.True(t, h.ViewContains("Cycle preset"))
	assert.False(t, h.ViewContains("Crossfader"))
}

func TestHelpBindings_ViewLabels(t *testing.T) {
	_, h := newTestHelpPopup([]string{"player", "channel"}, 60)
	assert.True(t, h.ViewContains("space"))
	assert.True(t, h.ViewContains("f1..f9"))
}

func TestHelpBindings_CategoryOrderIgnoresArgumentOrder(t *testing.T) {
	m, _ := newTestHelpPopup([]string{"settings", "global"}, 60)
	require.NotEmpty(t, m.bindings)
	assert.Equal(t, "global", m.bindings[0].Context)
	assert.Equal(t, "settings", m.bindings[len(m.bindings)-1].Context)
}

func TestHelpBindings_EmptyWhenUnsized(t *testing.T) {
	m := New(styles.T())
	m.SetContexts([]string{"global"})
	assert.Empty(t, m.View())
}

func TestHelpBindings_IgnoresNonKeyMessages(t *testing.T) {
	m, h := newTestHelpPopup(allContexts, 20)
	h.SendMsg("tick")
	assert.Nil(t, h.LastCommand())
	assert.Equal(t, 0, m.scrollOffset)
}
